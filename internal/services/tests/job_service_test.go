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
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mocks.MockJobRepository, *mocks.MockCompanyRepository) {
	t.Helper()
	jobRepo := new(mocks.MockJobRepository)
	companyRepo := new(mocks.MockCompanyRepository)
	svc := services.NewJobService(newTxBeginner(), jobRepo, companyRepo)
	return context.Background(), svc, jobRepo, companyRepo
}

func TestJobService_Create_Success(t *testing.T) {
	ctx, svc, jobRepo, companyRepo := setupJobServiceTest(t)
	identity := hrIdentity()

	companyID := uuid.New()
	req := &dto.CreateJobRequest{
		JobTitle:       "Backend Engineer",
		JobLocation:    models.LocationRemotely,
		WorkingTime:    models.WorkingFullTime,
		SeniorityLevel: models.SenioritySenior,
		CompanyID:      companyID,
		AddedBy:        identity.ID,
	}

	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: identity.ID}, nil).Once()
	jobRepo.On("Create", ctx, mock.MatchedBy(func(j *models.Job) bool {
		return j.JobTitle == "Backend Engineer" &&
			j.CompanyID == companyID &&
			j.AddedBy == identity.ID
	})).Return(&models.Job{ID: uuid.New(), JobTitle: "Backend Engineer", CompanyID: companyID}, nil).Once()

	job, err := svc.Create(ctx, identity, req)
	require.NoError(t, err)
	assert.Equal(t, companyID, job.CompanyID)

	companyRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Create_ForbiddenForRegularUser(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	job, err := svc.Create(ctx, userIdentity(), &dto.CreateJobRequest{JobTitle: "X"})
	assert.Nil(t, job)
	assert.ErrorIs(t, err, services.ErrForbidden)
	jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_Create_ForbiddenForNonOwner(t *testing.T) {
	ctx, svc, jobRepo, companyRepo := setupJobServiceTest(t)
	identity := hrIdentity()

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	job, err := svc.Create(ctx, identity, &dto.CreateJobRequest{
		JobTitle:  "Backend Engineer",
		CompanyID: companyID,
	})
	assert.Nil(t, job)
	assert.ErrorIs(t, err, services.ErrForbidden)
	jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_Create_CompanyNotFound(t *testing.T) {
	ctx, svc, _, companyRepo := setupJobServiceTest(t)

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).Return(nil, storage.ErrNotFound).Once()

	job, err := svc.Create(ctx, hrIdentity(), &dto.CreateJobRequest{CompanyID: companyID})
	assert.Nil(t, job)
	assert.ErrorIs(t, err, services.ErrNotFound)
	companyRepo.AssertExpectations(t)
}

func TestJobService_ListAll(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	jobRepo.On("List", ctx, (*dto.SearchJobsRequest)(nil)).
		Return([]models.Job{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()

	jobs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Search_PassesFilterThrough(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	workingTime := models.WorkingPartTime
	filter := &dto.SearchJobsRequest{WorkingTime: &workingTime}

	jobRepo.On("List", ctx, filter).Return([]models.Job{}, nil).Once()

	jobs, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	jobRepo.AssertExpectations(t)
}

func TestJobService_ListByCompanyName_Success(t *testing.T) {
	ctx, svc, jobRepo, companyRepo := setupJobServiceTest(t)

	companyID := uuid.New()
	companyRepo.On("GetByName", ctx, "Acme").
		Return(&models.Company{ID: companyID, CompanyName: "Acme"}, nil).Once()
	jobRepo.On("ListByCompany", ctx, companyID).
		Return([]models.Job{{ID: uuid.New()}}, nil).Once()

	company, jobs, err := svc.ListByCompanyName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.CompanyName)
	assert.Len(t, jobs, 1)

	companyRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestJobService_ListByCompanyName_UnknownCompany(t *testing.T) {
	ctx, svc, _, companyRepo := setupJobServiceTest(t)

	companyRepo.On("GetByName", ctx, "Ghost").Return(nil, storage.ErrNotFound).Once()

	_, _, err := svc.ListByCompanyName(ctx, "Ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
	companyRepo.AssertExpectations(t)
}

func TestJobService_ListByCompanyName_NoJobs(t *testing.T) {
	ctx, svc, jobRepo, companyRepo := setupJobServiceTest(t)

	companyID := uuid.New()
	companyRepo.On("GetByName", ctx, "Acme").
		Return(&models.Company{ID: companyID, CompanyName: "Acme"}, nil).Once()
	jobRepo.On("ListByCompany", ctx, companyID).Return([]models.Job{}, nil).Once()

	_, _, err := svc.ListByCompanyName(ctx, "Acme")
	assert.ErrorIs(t, err, services.ErrNotFound)

	companyRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Update_CommitsForOwner(t *testing.T) {
	ctx := context.Background()
	identity := hrIdentity()
	jobRepo := new(mocks.MockJobRepository)
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(pgx.ErrTxClosed).Once() // deferred rollback after commit
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewJobService(db, jobRepo, companyRepo)

	jobID := uuid.New()
	companyID := uuid.New()
	newTitle := "Staff Engineer"
	req := &dto.UpdateJobRequest{ID: jobID, JobTitle: &newTitle}

	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID, CompanyID: companyID}, nil).Once()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: identity.ID}, nil).Once()
	jobRepo.On("Update", ctx, req).
		Return(&models.Job{ID: jobID, JobTitle: newTitle, CompanyID: companyID}, nil).Once()

	updated, err := svc.Update(ctx, identity, req)
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.JobTitle)
	jobRepo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestJobService_Update_ForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	jobRepo := new(mocks.MockJobRepository)
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Rollback", mock.Anything).Return(nil).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewJobService(db, jobRepo, companyRepo)

	jobID := uuid.New()
	companyID := uuid.New()
	req := &dto.UpdateJobRequest{ID: jobID}

	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID, CompanyID: companyID}, nil).Once()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	updated, err := svc.Update(ctx, hrIdentity(), req)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrForbidden)
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertExpectations(t)
}

func TestJobService_Delete_CommitsForOwner(t *testing.T) {
	ctx := context.Background()
	identity := hrIdentity()
	jobRepo := new(mocks.MockJobRepository)
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(pgx.ErrTxClosed).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewJobService(db, jobRepo, companyRepo)

	jobID := uuid.New()
	companyID := uuid.New()
	job := &models.Job{ID: jobID, CompanyID: companyID}

	jobRepo.On("GetByID", ctx, jobID).Return(job, nil).Once()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: identity.ID}, nil).Once()
	jobRepo.On("Delete", ctx, jobID).Return(job, nil).Once()

	deleted, err := svc.Delete(ctx, identity, jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, deleted.ID)
	jobRepo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestJobService_Delete_ForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	jobRepo := new(mocks.MockJobRepository)
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Rollback", mock.Anything).Return(nil).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewJobService(db, jobRepo, companyRepo)

	jobID := uuid.New()
	companyID := uuid.New()

	jobRepo.On("GetByID", ctx, jobID).Return(&models.Job{ID: jobID, CompanyID: companyID}, nil).Once()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	deleted, err := svc.Delete(ctx, hrIdentity(), jobID)
	assert.Nil(t, deleted)
	assert.ErrorIs(t, err, services.ErrForbidden)
	jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertExpectations(t)
}
