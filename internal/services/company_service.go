package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

type companyService struct {
	db          storage.TxBeginner
	companyRepo storage.CompanyRepository
	jobRepo     storage.JobRepository
	appRepo     storage.ApplicationRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(db storage.TxBeginner, companyRepo storage.CompanyRepository,
	jobRepo storage.JobRepository, appRepo storage.ApplicationRepository) CompanyService {
	return &companyService{
		db:          db,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
	}
}

func (s *companyService) Create(ctx context.Context, identity Identity, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if err := RequireRole(identity, models.RoleCompanyHR); err != nil {
		log.Printf("CreateCompany: Forbidden attempt by user %s with role %s", identity.ID, identity.Role)
		return nil, err
	}

	company := &models.Company{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
		CompanyHR:         identity.ID,
	}

	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: company name or email already exists", ErrConflict)
		}
		log.Printf("CreateCompany: Error saving company in repo: %v", err)
		return nil, fmt.Errorf("internal error saving company: %w", err)
	}
	return created, nil
}

func (s *companyService) Get(ctx context.Context, identity Identity, id uuid.UUID) (*models.Company, []models.Job, error) {
	if err := RequireRole(identity, models.RoleCompanyHR); err != nil {
		return nil, nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching company")
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching company jobs")
	}

	return company, jobs, nil
}

func (s *companyService) Search(ctx context.Context, name string) ([]models.Company, error) {
	companies, err := s.companyRepo.FindByName(ctx, name)
	if err != nil {
		return nil, mapRepoError(err, "searching companies")
	}
	return companies, nil
}

func (s *companyService) Update(ctx context.Context, identity Identity, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UpdateCompany: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txCompanyRepo := s.companyRepo.WithTx(tx)

	company, err := txCompanyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching company for update")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("UpdateCompany: Forbidden attempt by user %s on company %s", identity.ID, req.ID)
		return nil, err
	}

	updated, err := txCompanyRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: company name or email already exists", ErrConflict)
		}
		return nil, mapRepoError(err, "updating company")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(ctx); err != nil {
		log.Printf("UpdateCompany: Error committing transaction: %v", err)
		return nil, mapRepoError(err, "committing company update")
	}
	// --- End Transaction ---
	return updated, nil
}

func (s *companyService) Delete(ctx context.Context, identity Identity, id uuid.UUID) (*models.Company, error) {
	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("DeleteCompany: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txCompanyRepo := s.companyRepo.WithTx(tx)

	company, err := txCompanyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching company for deletion")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("DeleteCompany: Forbidden attempt by user %s on company %s", identity.ID, id)
		return nil, err
	}

	deleted, err := txCompanyRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "deleting company")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(ctx); err != nil {
		log.Printf("DeleteCompany: Error committing transaction: %v", err)
		return nil, mapRepoError(err, "committing company deletion")
	}
	// --- End Transaction ---
	return deleted, nil
}

func (s *companyService) ListApplications(ctx context.Context, identity Identity, companyID uuid.UUID) (*models.Company, []models.Application, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching company for applications")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("ListApplications: Forbidden attempt by user %s on company %s", identity.ID, companyID)
		return nil, nil, err
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching company jobs for applications")
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	apps, err := s.appRepo.ListByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching applications")
	}

	return company, apps, nil
}
