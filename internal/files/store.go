// Package files persists applicant resume uploads on local disk.
package files

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxResumeSize is the upload cap for a single resume file (5 MiB).
const MaxResumeSize = 5 * 1024 * 1024

var (
	// ErrFileTooLarge is returned when the upload exceeds MaxResumeSize.
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrInvalidFileType is returned for anything that is not a PDF.
	ErrInvalidFileType = errors.New("only PDF files are accepted")
)

// ResumeStore saves resume uploads under a configured directory. Stored
// names are prefixed with a fresh UUID so concurrent uploads of files with
// the same name never collide.
type ResumeStore struct {
	dir string
}

// NewResumeStore creates the upload directory if missing and returns a
// store rooted at it.
func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Save validates and persists an uploaded resume, returning the stored
// relative path.
func (s *ResumeStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxResumeSize {
		return "", ErrFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return "", ErrInvalidFileType
	}

	name := uuid.NewString() + "_" + filepath.Base(file.Filename)
	dst := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create resume file: %w", err)
	}
	defer out.Close()

	written, err := out.ReadFrom(src)
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}
	if written > MaxResumeSize {
		os.Remove(dst)
		return "", ErrFileTooLarge
	}

	log.Printf("ResumeStore: Saved resume %s (%d bytes)", name, written)
	return dst, nil
}

// Remove deletes a stored resume, e.g. when the application it belonged to
// is rejected before being recorded. A missing file is not an error.
func (s *ResumeStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove resume file %s: %w", path, err)
	}
	return nil
}
