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

func setupCompanyServiceTest(t *testing.T) (context.Context, services.CompanyService, *mocks.MockCompanyRepository, *mocks.MockJobRepository, *mocks.MockApplicationRepository) {
	t.Helper()
	companyRepo := new(mocks.MockCompanyRepository)
	jobRepo := new(mocks.MockJobRepository)
	appRepo := new(mocks.MockApplicationRepository)
	svc := services.NewCompanyService(newTxBeginner(), companyRepo, jobRepo, appRepo)
	return context.Background(), svc, companyRepo, jobRepo, appRepo
}

// newTxBeginner hands out transactions that accept any Commit/Rollback
// sequence; tests that care about commit behavior build their own.
func newTxBeginner() *mocks.MockTxBeginner {
	tx := new(mocks.MockTx)
	tx.On("Commit", mock.Anything).Return(nil).Maybe()
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Maybe()
	return db
}

func hrIdentity() services.Identity {
	return services.Identity{ID: uuid.New(), Role: models.RoleCompanyHR}
}

func userIdentity() services.Identity {
	return services.Identity{ID: uuid.New(), Role: models.RoleUser}
}

func TestCompanyService_Create_Success(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)
	identity := hrIdentity()

	req := &dto.CreateCompanyRequest{
		CompanyName:  "Acme",
		CompanyEmail: "hr@acme.example",
		CompanyHR:    identity.ID,
	}

	companyRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Company) bool {
		return c.CompanyName == "Acme" && c.CompanyHR == identity.ID
	})).Return(&models.Company{ID: uuid.New(), CompanyName: "Acme", CompanyHR: identity.ID}, nil).Once()

	company, err := svc.Create(ctx, identity, req)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, company.CompanyHR)
	companyRepo.AssertExpectations(t)
}

func TestCompanyService_Create_ForbiddenForRegularUser(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)

	company, err := svc.Create(ctx, userIdentity(), &dto.CreateCompanyRequest{
		CompanyName:  "Acme",
		CompanyEmail: "hr@acme.example",
	})
	assert.Nil(t, company)
	assert.ErrorIs(t, err, services.ErrForbidden)
	companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyService_Create_Conflict(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)
	identity := hrIdentity()

	companyRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

	company, err := svc.Create(ctx, identity, &dto.CreateCompanyRequest{
		CompanyName:  "Acme",
		CompanyEmail: "hr@acme.example",
		CompanyHR:    identity.ID,
	})
	assert.Nil(t, company)
	assert.ErrorIs(t, err, services.ErrConflict)
	companyRepo.AssertExpectations(t)
}

func TestCompanyService_Get_ReturnsCompanyWithJobs(t *testing.T) {
	ctx, svc, companyRepo, jobRepo, _ := setupCompanyServiceTest(t)
	identity := hrIdentity()

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyName: "Acme"}, nil).Once()
	jobRepo.On("ListByCompany", ctx, companyID).
		Return([]models.Job{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()

	company, jobs, err := svc.Get(ctx, identity, companyID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.CompanyName)
	assert.Len(t, jobs, 2)

	companyRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestCompanyService_Get_ForbiddenForRegularUser(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)

	company, jobs, err := svc.Get(ctx, userIdentity(), uuid.New())
	assert.Nil(t, company)
	assert.Nil(t, jobs)
	assert.ErrorIs(t, err, services.ErrForbidden)
	companyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCompanyService_Get_NotFound(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).Return(nil, storage.ErrNotFound).Once()

	_, _, err := svc.Get(ctx, hrIdentity(), companyID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	companyRepo.AssertExpectations(t)
}

func TestCompanyService_Search(t *testing.T) {
	ctx, svc, companyRepo, _, _ := setupCompanyServiceTest(t)

	companyRepo.On("FindByName", ctx, "acm").
		Return([]models.Company{{CompanyName: "Acme"}}, nil).Once()

	companies, err := svc.Search(ctx, "acm")
	require.NoError(t, err)
	assert.Len(t, companies, 1)
	companyRepo.AssertExpectations(t)
}

func TestCompanyService_ListApplications_Success(t *testing.T) {
	ctx, svc, companyRepo, jobRepo, appRepo := setupCompanyServiceTest(t)
	identity := hrIdentity()

	companyID := uuid.New()
	jobA, jobB := uuid.New(), uuid.New()

	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: identity.ID}, nil).Once()
	jobRepo.On("ListByCompany", ctx, companyID).
		Return([]models.Job{{ID: jobA}, {ID: jobB}}, nil).Once()
	appRepo.On("ListByJobIDs", ctx, []uuid.UUID{jobA, jobB}).
		Return([]models.Application{{ID: uuid.New(), JobID: jobA}}, nil).Once()

	company, apps, err := svc.ListApplications(ctx, identity, companyID)
	require.NoError(t, err)
	assert.Equal(t, companyID, company.ID)
	assert.Len(t, apps, 1)

	companyRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	appRepo.AssertExpectations(t)
}

func TestCompanyService_ListApplications_ForbiddenForNonOwner(t *testing.T) {
	ctx, svc, companyRepo, _, appRepo := setupCompanyServiceTest(t)
	identity := hrIdentity()

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	company, apps, err := svc.ListApplications(ctx, identity, companyID)
	assert.Nil(t, company)
	assert.Nil(t, apps)
	assert.ErrorIs(t, err, services.ErrForbidden)
	appRepo.AssertNotCalled(t, "ListByJobIDs", mock.Anything, mock.Anything)
}

func TestCompanyService_Update_CommitsForOwner(t *testing.T) {
	ctx := context.Background()
	identity := hrIdentity()
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(pgx.ErrTxClosed).Once() // deferred rollback after commit
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewCompanyService(db, companyRepo, new(mocks.MockJobRepository), new(mocks.MockApplicationRepository))

	companyID := uuid.New()
	newName := "Acme Renamed"
	req := &dto.UpdateCompanyRequest{ID: companyID, CompanyName: &newName}

	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: identity.ID}, nil).Once()
	companyRepo.On("Update", ctx, req).
		Return(&models.Company{ID: companyID, CompanyName: newName, CompanyHR: identity.ID}, nil).Once()

	updated, err := svc.Update(ctx, identity, req)
	require.NoError(t, err)
	assert.Equal(t, newName, updated.CompanyName)
	companyRepo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestCompanyService_Update_ForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Rollback", mock.Anything).Return(nil).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewCompanyService(db, companyRepo, new(mocks.MockJobRepository), new(mocks.MockApplicationRepository))

	companyID := uuid.New()
	req := &dto.UpdateCompanyRequest{ID: companyID}
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	updated, err := svc.Update(ctx, hrIdentity(), req)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrForbidden)
	companyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertExpectations(t)
}

func TestCompanyService_Delete_CommitsForOwner(t *testing.T) {
	ctx := context.Background()
	identity := hrIdentity()
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(pgx.ErrTxClosed).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewCompanyService(db, companyRepo, new(mocks.MockJobRepository), new(mocks.MockApplicationRepository))

	companyID := uuid.New()
	company := &models.Company{ID: companyID, CompanyHR: identity.ID}
	companyRepo.On("GetByID", ctx, companyID).Return(company, nil).Once()
	companyRepo.On("Delete", ctx, companyID).Return(company, nil).Once()

	deleted, err := svc.Delete(ctx, identity, companyID)
	require.NoError(t, err)
	assert.Equal(t, companyID, deleted.ID)
	companyRepo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestCompanyService_Delete_ForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(mocks.MockCompanyRepository)

	tx := new(mocks.MockTx)
	tx.On("Rollback", mock.Anything).Return(nil).Once()
	db := new(mocks.MockTxBeginner)
	db.On("Begin", mock.Anything).Return(tx, nil).Once()
	svc := services.NewCompanyService(db, companyRepo, new(mocks.MockJobRepository), new(mocks.MockApplicationRepository))

	companyID := uuid.New()
	companyRepo.On("GetByID", ctx, companyID).
		Return(&models.Company{ID: companyID, CompanyHR: uuid.New()}, nil).Once()

	deleted, err := svc.Delete(ctx, hrIdentity(), companyID)
	assert.Nil(t, deleted)
	assert.ErrorIs(t, err, services.ErrForbidden)
	companyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertExpectations(t)
}
