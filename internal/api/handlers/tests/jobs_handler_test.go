package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/files"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobService mocks services.JobService.
type MockJobService struct {
	mock.Mock
}

var _ services.JobService = (*MockJobService)(nil)

func (m *MockJobService) Create(ctx context.Context, identity services.Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListAll(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) Search(ctx context.Context, filter *dto.SearchJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) ListByCompanyName(ctx context.Context, companyName string) (*models.Company, []models.Job, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Company), args.Get(1).([]models.Job), args.Error(2)
}

func (m *MockJobService) Update(ctx context.Context, identity services.Identity, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, identity services.Identity, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

// MockApplicationService mocks services.ApplicationService.
type MockApplicationService struct {
	mock.Mock
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

func (m *MockApplicationService) Apply(ctx context.Context, identity services.Identity, req *dto.ApplyRequest) (*models.Application, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func setupJobRouter(t *testing.T, uploadDir string) (*gin.Engine, *MockJobService, *MockApplicationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jobSvc := new(MockJobService)
	appSvc := new(MockApplicationService)
	resumes, err := files.NewResumeStore(uploadDir)
	require.NoError(t, err)

	handler := handlers.NewJobHandler(jobSvc, appSvc, resumes, validator.New())
	authMiddleware := middleware.JWTAuthMiddleware(testSecret)

	router := gin.New()
	job := router.Group("/job")
	job.Use(authMiddleware)
	{
		job.POST("/apply", handler.ApplyToJob)
	}
	return router, jobSvc, appSvc
}

func applyForm(t *testing.T, jobID uuid.UUID, resume []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("jobId", jobID.String()))
	require.NoError(t, writer.WriteField("userTechSkills", "Go"))
	part, err := writer.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write(resume)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestJobHandler_ApplyToJob_WithResume(t *testing.T) {
	uploadDir := t.TempDir()
	router, _, appSvc := setupJobRouter(t, uploadDir)

	user := &models.User{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleUser}
	token := issueTestToken(t, user, testSecret, 15*time.Minute)

	jobID := uuid.New()
	appSvc.On("Apply", mock.Anything, mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
		return req.ResumePath != nil && req.JobID == jobID
	})).Return(&models.Application{ID: uuid.New(), JobID: jobID, UserID: user.ID}, nil).Once()

	body, contentType := applyForm(t, jobID, []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/job/apply", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	appSvc.AssertExpectations(t)
}

// A rejected application must not leave its uploaded resume behind.
func TestJobHandler_ApplyToJob_RemovesResumeOnRejection(t *testing.T) {
	uploadDir := t.TempDir()
	router, _, appSvc := setupJobRouter(t, uploadDir)

	user := &models.User{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleUser}
	token := issueTestToken(t, user, testSecret, 15*time.Minute)

	appSvc.On("Apply", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, services.ErrConflict).Once()

	body, contentType := applyForm(t, uuid.New(), []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/job/apply", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	appSvc.AssertExpectations(t)
}
