package services_test

import (
	"context"
	"testing"

	"job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApplicationServiceTest(t *testing.T) (context.Context, services.ApplicationService, *mocks.MockApplicationRepository, *mocks.MockJobRepository) {
	t.Helper()
	appRepo := new(mocks.MockApplicationRepository)
	jobRepo := new(mocks.MockJobRepository)
	svc := services.NewApplicationService(appRepo, jobRepo)
	return context.Background(), svc, appRepo, jobRepo
}

func TestApplicationService_Apply_Success(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest(t)
	identity := userIdentity()

	jobID := uuid.New()
	resume := "uploads/resumes/abc_cv.pdf"
	req := &dto.ApplyRequest{
		JobID:          jobID,
		UserTechSkills: []string{"Go", "Postgres"},
		UserSoftSkills: []string{"communication"},
		UserID:         identity.ID,
		ResumePath:     &resume,
	}

	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID}, nil).Once()
	appRepo.On("Create", ctx, mock.MatchedBy(func(a *models.Application) bool {
		return a.JobID == jobID &&
			a.UserID == identity.ID &&
			len(a.UserTechSkills) == 2 &&
			a.ResumePath != nil && *a.ResumePath == resume
	})).Return(&models.Application{ID: uuid.New(), JobID: jobID, UserID: identity.ID}, nil).Once()

	app, err := svc.Apply(ctx, identity, req)
	require.NoError(t, err)
	assert.Equal(t, jobID, app.JobID)

	jobRepo.AssertExpectations(t)
	appRepo.AssertExpectations(t)
}

func TestApplicationService_Apply_ForbiddenForHR(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest(t)
	identity := hrIdentity()

	jobID := uuid.New()
	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID}, nil).Once()

	app, err := svc.Apply(ctx, identity, &dto.ApplyRequest{JobID: jobID, UserTechSkills: []string{"Go"}})
	assert.Nil(t, app)
	assert.ErrorIs(t, err, services.ErrForbidden)
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest(t)

	jobID := uuid.New()
	jobRepo.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound).Once()

	app, err := svc.Apply(ctx, userIdentity(), &dto.ApplyRequest{JobID: jobID, UserTechSkills: []string{"Go"}})
	assert.Nil(t, app)
	assert.ErrorIs(t, err, services.ErrNotFound)
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_Apply_DuplicateConflict(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest(t)
	identity := userIdentity()

	jobID := uuid.New()
	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID}, nil).Once()
	appRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

	app, err := svc.Apply(ctx, identity, &dto.ApplyRequest{JobID: jobID, UserTechSkills: []string{"Go"}})
	assert.Nil(t, app)
	assert.ErrorIs(t, err, services.ErrConflict)

	jobRepo.AssertExpectations(t)
	appRepo.AssertExpectations(t)
}

// Role is checked before job existence, so an HR account probing a missing
// job learns nothing about it.
func TestApplicationService_Apply_ForbiddenForHREvenWhenJobMissing(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest(t)

	jobID := uuid.New()
	jobRepo.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound).Once()

	app, err := svc.Apply(ctx, hrIdentity(), &dto.ApplyRequest{JobID: jobID})
	assert.Nil(t, app)
	assert.ErrorIs(t, err, services.ErrForbidden)
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
