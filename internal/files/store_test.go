package files

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	file, header, err := req.FormFile("resume")
	require.NoError(t, err)
	file.Close()
	return header
}

func TestResumeStore_Save(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	header := uploadedFileHeader(t, "cv.pdf", []byte("%PDF-1.4 fake content"))
	path, err := store.Save(header)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "_cv.pdf"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake content"), data)
}

func TestResumeStore_Save_UniqueNames(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(uploadedFileHeader(t, "cv.pdf", []byte("one")))
	require.NoError(t, err)
	second, err := store.Save(uploadedFileHeader(t, "cv.pdf", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResumeStore_Save_RejectsNonPDF(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	header := uploadedFileHeader(t, "cv.docx", []byte("not a pdf"))
	_, err = store.Save(header)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestResumeStore_Save_RejectsOversized(t *testing.T) {
	dir := t.TempDir()
	store, err := NewResumeStore(dir)
	require.NoError(t, err)

	header := uploadedFileHeader(t, "big.pdf", bytes.Repeat([]byte("a"), MaxResumeSize+1))
	_, err = store.Save(header)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Nothing may be left behind on rejection.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewResumeStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "resumes")
	_, err := NewResumeStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResumeStore_Remove(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(uploadedFileHeader(t, "cv.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing an already-removed file is not an error.
	assert.NoError(t, store.Remove(path))
}
