package storage

import (
	"context"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner starts database transactions for services that pair an
// ownership read with a write. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository defines the interface for user data operations.
// Repositories perform no authorization; that belongs to the services layer.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByLogin matches a user on email OR mobile phone (signin identifier).
	GetByLogin(ctx context.Context, email, mobilePhone string) (*models.User, error)
	GetByRecoveryEmail(ctx context.Context, recoveryEmail string) (*models.User, error)
	ListByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*models.User, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error)
	SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error
	// ResetPassword sets a new hash and clears any stored OTP state.
	ResetPassword(ctx context.Context, email, passwordHash string) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx pgx.Tx) UserRepository
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
	FindByName(ctx context.Context, name string) ([]models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Company, error)
	WithTx(tx pgx.Tx) CompanyRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// List returns jobs matching the optional filter dimensions (AND-ed),
	// each with the full owning company attached. A nil or empty filter
	// returns all jobs.
	List(ctx context.Context, filter *dto.SearchJobsRequest) ([]models.Job, error)
	// ListByCompany returns a company's jobs with the reduced
	// {companyName, companyEmail} company view attached.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Job, error)
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for job application data
// operations. Applications are immutable after creation.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	// ListByJobIDs returns applications for any of the given jobs, each with
	// the reduced applicant view {userName, mobilePhone, email} attached.
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}
