package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (s *applicationService) Apply(ctx context.Context, identity Identity, req *dto.ApplyRequest) (*models.Application, error) {
	// The job stays nil on NotFound so the eligibility predicate checks the
	// role before reporting a missing job.
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "fetching job for application")
	}

	if err := RequireApplicantEligibility(identity, job); err != nil {
		log.Printf("Apply: Forbidden attempt by user %s with role %s on job %s", identity.ID, identity.Role, req.JobID)
		return nil, err
	}

	app := &models.Application{
		JobID:          job.ID,
		UserID:         identity.ID,
		UserTechSkills: req.UserTechSkills,
		UserSoftSkills: req.UserSoftSkills,
		ResumePath:     req.ResumePath,
	}

	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
		}
		log.Printf("Apply: Error saving application in repo: %v", err)
		return nil, mapRepoError(err, "saving application")
	}
	return created, nil
}
