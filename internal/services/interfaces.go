package services

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account and credential business logic.
type UserService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	Signin(ctx context.Context, req *dto.SigninRequest) (*models.User, string, string, error) // user, access token, refresh token
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) (*models.User, error)
	ListByRecoveryEmail(ctx context.Context, identity Identity, recoveryEmail string) ([]models.User, error)
	RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*models.User, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*models.User, error)
}

// CompanyService defines the interface for company business logic. Every
// mutation is gated by the rule predicates before touching storage.
type CompanyService interface {
	Create(ctx context.Context, identity Identity, req *dto.CreateCompanyRequest) (*models.Company, error)
	Get(ctx context.Context, identity Identity, id uuid.UUID) (*models.Company, []models.Job, error)
	Search(ctx context.Context, name string) ([]models.Company, error)
	Update(ctx context.Context, identity Identity, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, identity Identity, id uuid.UUID) (*models.Company, error)
	ListApplications(ctx context.Context, identity Identity, companyID uuid.UUID) (*models.Company, []models.Application, error)
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	Create(ctx context.Context, identity Identity, req *dto.CreateJobRequest) (*models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	Search(ctx context.Context, filter *dto.SearchJobsRequest) ([]models.Job, error)
	ListByCompanyName(ctx context.Context, companyName string) (*models.Company, []models.Job, error)
	Update(ctx context.Context, identity Identity, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, identity Identity, id uuid.UUID) (*models.Job, error)
}

// ApplicationService defines the interface for the apply workflow.
type ApplicationService interface {
	Apply(ctx context.Context, identity Identity, req *dto.ApplyRequest) (*models.Application, error)
}
