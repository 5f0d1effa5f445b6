package services

import (
	"context"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	db          storage.TxBeginner
	jobRepo     storage.JobRepository
	companyRepo storage.CompanyRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(db storage.TxBeginner, jobRepo storage.JobRepository, companyRepo storage.CompanyRepository) JobService {
	return &jobService{
		db:          db,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (s *jobService) Create(ctx context.Context, identity Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := RequireRole(identity, models.RoleCompanyHR); err != nil {
		log.Printf("CreateJob: Forbidden attempt by user %s with role %s", identity.ID, identity.Role)
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, mapRepoError(err, "fetching company for job creation")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("CreateJob: Forbidden attempt by user %s on company %s", identity.ID, req.CompanyID)
		return nil, err
	}

	job := &models.Job{
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		AddedBy:         identity.ID,
		CompanyID:       company.ID,
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("CreateJob: Error saving job in repo: %v", err)
		return nil, mapRepoError(err, "saving job")
	}
	return created, nil
}

func (s *jobService) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) Search(ctx context.Context, filter *dto.SearchJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "searching jobs")
	}
	return jobs, nil
}

func (s *jobService) ListByCompanyName(ctx context.Context, companyName string) (*models.Company, []models.Job, error) {
	company, err := s.companyRepo.GetByName(ctx, companyName)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching company by name")
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, nil, mapRepoError(err, "fetching jobs for company")
	}
	if len(jobs) == 0 {
		return nil, nil, fmt.Errorf("%w: no jobs found for this company", ErrNotFound)
	}

	return company, jobs, nil
}

func (s *jobService) Update(ctx context.Context, identity Identity, req *dto.UpdateJobRequest) (*models.Job, error) {
	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UpdateJob: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txJobRepo := s.jobRepo.WithTx(tx)
	txCompanyRepo := s.companyRepo.WithTx(tx)

	job, err := txJobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}
	company, err := txCompanyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, mapRepoError(err, "fetching company for job update")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("UpdateJob: Forbidden attempt by user %s on job %s", identity.ID, req.ID)
		return nil, err
	}

	updated, err := txJobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(ctx); err != nil {
		log.Printf("UpdateJob: Error committing transaction: %v", err)
		return nil, mapRepoError(err, "committing job update")
	}
	// --- End Transaction ---
	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, identity Identity, id uuid.UUID) (*models.Job, error) {
	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("DeleteJob: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txJobRepo := s.jobRepo.WithTx(tx)
	txCompanyRepo := s.companyRepo.WithTx(tx)

	job, err := txJobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for deletion")
	}
	company, err := txCompanyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, mapRepoError(err, "fetching company for job deletion")
	}
	if err := RequireOwnership(identity, company); err != nil {
		log.Printf("DeleteJob: Forbidden attempt by user %s on job %s", identity.ID, id)
		return nil, err
	}

	deleted, err := txJobRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "deleting job")
	}

	// --- Commit Transaction ---
	if err := tx.Commit(ctx); err != nil {
		log.Printf("DeleteJob: Error committing transaction: %v", err)
		return nil, mapRepoError(err, "committing job deletion")
	}
	// --- End Transaction ---
	return deleted, nil
}
