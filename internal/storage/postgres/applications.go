package postgres

import (
	"context"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts a new application carrying the applicant's skill snapshot.
// A repeated application for the same (job, user) pair violates the unique
// index and surfaces as storage.ErrConflict; a vanished job or user
// surfaces as storage.ErrNotFound via the foreign keys.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	query := `
		INSERT INTO applications (id, job_id, user_id, user_tech_skills, user_soft_skills, resume_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, job_id, user_id, user_tech_skills, user_soft_skills, resume_path, created_at
	`

	row := r.db.QueryRow(ctx, query,
		app.ID,
		app.JobID,
		app.UserID,
		app.UserTechSkills,
		app.UserSoftSkills,
		app.ResumePath,
	)

	var created models.Application
	err := row.Scan(
		&created.ID,
		&created.JobID,
		&created.UserID,
		&created.UserTechSkills,
		&created.UserSoftSkills,
		&created.ResumePath,
		&created.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating application for job %s by user %s: %v\n", app.JobID, app.UserID, err)
		return nil, mapPgError(err, "create application")
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return &created, nil
}

// ListByJobIDs retrieves applications for any of the given jobs. Each row
// carries only the reduced applicant contact view; the full user record is
// deliberately not exposed here.
func (r *ApplicationRepo) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, nil
	}

	query := `
		SELECT a.id, a.job_id, a.user_id, a.user_tech_skills, a.user_soft_skills, a.resume_path, a.created_at,
			u.id, u.user_name, u.mobile_phone, u.email
		FROM applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.job_id = ANY($1)
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, jobIDs)
	if err != nil {
		log.Printf("Error querying applications for %d jobs: %v\n", len(jobIDs), err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var app models.Application
		var applicant models.ApplicantSummary
		err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.UserID,
			&app.UserTechSkills,
			&app.UserSoftSkills,
			&app.ResumePath,
			&app.CreatedAt,
			&applicant.ID,
			&applicant.UserName,
			&applicant.MobilePhone,
			&applicant.Email,
		)
		if err != nil {
			log.Printf("Error scanning application row: %v\n", err)
			return nil, fmt.Errorf("failed to scan applications: %w", err)
		}
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}
