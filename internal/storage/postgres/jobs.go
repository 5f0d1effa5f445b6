package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, job_title, job_location, working_time, seniority_level, job_description,
	technical_skills, soft_skills, added_by, company_id, created_at, updated_at`

const jobColumnsQualified = `j.id, j.job_title, j.job_location, j.working_time, j.seniority_level,
	j.job_description, j.technical_skills, j.soft_skills, j.added_by, j.company_id, j.created_at, j.updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

var _ storage.JobRepository = (*JobRepo)(nil)

func scanJobFields(row pgx.Row, j *models.Job, extra ...any) error {
	dest := []any{
		&j.ID,
		&j.JobTitle,
		&j.JobLocation,
		&j.WorkingTime,
		&j.SeniorityLevel,
		&j.JobDescription,
		&j.TechnicalSkills,
		&j.SoftSkills,
		&j.AddedBy,
		&j.CompanyID,
		&j.CreatedAt,
		&j.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

// buildJobSearchConditions translates the optional filter dimensions into
// AND-ed SQL conditions. Exact match on working time, location and
// seniority; case-insensitive substring match on the title; the technical
// skills dimension is a comma-separated candidate list the job's skills
// value must equal one element of.
func buildJobSearchConditions(filter *dto.SearchJobsRequest) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter == nil {
		return conditions, args
	}

	if filter.WorkingTime != nil {
		args = append(args, *filter.WorkingTime)
		conditions = append(conditions, fmt.Sprintf("j.working_time = $%d", len(args)))
	}
	if filter.JobLocation != nil {
		args = append(args, *filter.JobLocation)
		conditions = append(conditions, fmt.Sprintf("j.job_location = $%d", len(args)))
	}
	if filter.SeniorityLevel != nil {
		args = append(args, *filter.SeniorityLevel)
		conditions = append(conditions, fmt.Sprintf("j.seniority_level = $%d", len(args)))
	}
	if filter.JobTitle != nil && *filter.JobTitle != "" {
		args = append(args, "%"+*filter.JobTitle+"%")
		conditions = append(conditions, fmt.Sprintf("j.job_title ILIKE $%d", len(args)))
	}
	if filter.TechnicalSkills != nil && *filter.TechnicalSkills != "" {
		candidates := strings.Split(*filter.TechnicalSkills, ",")
		for i := range candidates {
			candidates[i] = strings.TrimSpace(candidates[i])
		}
		args = append(args, candidates)
		conditions = append(conditions, fmt.Sprintf("j.technical_skills = ANY($%d)", len(args)))
	}

	return conditions, args
}

// Create inserts a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	query := `
		INSERT INTO jobs (id, job_title, job_location, working_time, seniority_level, job_description,
			technical_skills, soft_skills, added_by, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		job.ID,
		job.JobTitle,
		job.JobLocation,
		job.WorkingTime,
		job.SeniorityLevel,
		job.JobDescription,
		job.TechnicalSkills,
		job.SoftSkills,
		job.AddedBy,
		job.CompanyID,
	)

	var created models.Job
	if err := scanJobFields(row, &created); err != nil {
		log.Printf("Error creating job %q: %v\n", job.JobTitle, err)
		return nil, mapPgError(err, "create job")
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.Job
	err := scanJobFields(r.db.QueryRow(ctx, query, id), &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// List retrieves jobs matching the filter, each carrying its full owning
// company. An empty filter returns every job.
func (r *JobRepo) List(ctx context.Context, filter *dto.SearchJobsRequest) ([]models.Job, error) {
	conditions, args := buildJobSearchConditions(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + jobColumnsQualified + `,
			c.id, c.company_name, c.description, c.industry, c.address, c.number_of_employees,
			c.company_email, c.company_hr, c.created_at, c.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
	`)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY j.created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		var company models.Company
		err := scanJobFields(rows, &job,
			&company.ID,
			&company.CompanyName,
			&company.Description,
			&company.Industry,
			&company.Address,
			&company.NumberOfEmployees,
			&company.CompanyEmail,
			&company.CompanyHR,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, fmt.Errorf("failed to scan jobs: %w", err)
		}
		job.CompanyInfo = &company
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// ListByCompany retrieves a company's jobs with the reduced company view.
func (r *JobRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumnsQualified + `, c.id, c.company_name, c.company_email
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		log.Printf("Error querying jobs by company %s: %v\n", companyID, err)
		return nil, fmt.Errorf("failed to query jobs by company: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		var brief models.CompanySummary
		err := scanJobFields(rows, &job, &brief.ID, &brief.CompanyName, &brief.CompanyEmail)
		if err != nil {
			log.Printf("Error scanning job row for company %s: %v\n", companyID, err)
			return nil, fmt.Errorf("failed to scan jobs by company: %w", err)
		}
		job.CompanyBrief = &brief
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs by company: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.JobTitle != nil {
		addSet("job_title", *req.JobTitle)
	}
	if req.JobLocation != nil {
		addSet("job_location", *req.JobLocation)
	}
	if req.WorkingTime != nil {
		addSet("working_time", *req.WorkingTime)
	}
	if req.SeniorityLevel != nil {
		addSet("seniority_level", *req.SeniorityLevel)
	}
	if req.JobDescription != nil {
		addSet("job_description", *req.JobDescription)
	}
	if req.TechnicalSkills != nil {
		addSet("technical_skills", *req.TechnicalSkills)
	}
	if req.SoftSkills != nil {
		addSet("soft_skills", *req.SoftSkills)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on job %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING `+jobColumns,
		strings.Join(setClauses, ", "), argID)

	var updated models.Job
	if err := scanJobFields(r.db.QueryRow(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, mapPgError(err, "update job")
	}
	return &updated, nil
}

// Delete removes a job by ID, returning the removed record.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `DELETE FROM jobs WHERE id = $1 RETURNING ` + jobColumns

	var removed models.Job
	if err := scanJobFields(r.db.QueryRow(ctx, query, id), &removed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to delete non-existent job %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error deleting job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to delete job: %w", err)
	}
	return &removed, nil
}
