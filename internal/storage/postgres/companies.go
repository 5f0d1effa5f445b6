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

const companyColumns = `id, company_name, description, industry, address, number_of_employees,
	company_email, company_hr, created_at, updated_at`

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// WithTx creates a new CompanyRepo bound to the transaction.
func (r *CompanyRepo) WithTx(tx pgx.Tx) storage.CompanyRepository {
	return &CompanyRepo{db: tx}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.Description,
		&c.Industry,
		&c.Address,
		&c.NumberOfEmployees,
		&c.CompanyEmail,
		&c.CompanyHR,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new company. Name and email uniqueness is enforced by the
// database; either collision surfaces as storage.ErrConflict.
func (r *CompanyRepo) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}

	query := `
		INSERT INTO companies (id, company_name, description, industry, address, number_of_employees,
			company_email, company_hr, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + companyColumns

	row := r.db.QueryRow(ctx, query,
		company.ID,
		company.CompanyName,
		company.Description,
		company.Industry,
		company.Address,
		company.NumberOfEmployees,
		company.CompanyEmail,
		company.CompanyHR,
	)

	created, err := scanCompany(row)
	if err != nil {
		log.Printf("Error creating company %s: %v\n", company.CompanyName, err)
		return nil, mapPgError(err, "create company")
	}

	log.Printf("Company created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves a specific company by its ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting company by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return company, nil
}

// GetByName retrieves a company by its exact name.
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_name = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found with name: %s\n", name)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting company by name %s: %v\n", name, err)
		return nil, fmt.Errorf("failed to get company by name: %w", err)
	}
	return company, nil
}

// FindByName retrieves companies matching a name (case-insensitive search).
func (r *CompanyRepo) FindByName(ctx context.Context, name string) ([]models.Company, error) {
	query := buildListQuery(`SELECT `+companyColumns+` FROM companies`, []string{"company_name ILIKE $1"})

	rows, err := r.db.Query(ctx, query, "%"+name+"%")
	if err != nil {
		log.Printf("Error searching companies by name %s: %v\n", name, err)
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			log.Printf("Error scanning company row: %v\n", err)
			return nil, fmt.Errorf("failed to scan companies: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}

	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// Update modifies an existing company based on non-nil fields in the request DTO.
func (r *CompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.NumberOfEmployees != nil {
		addSet("number_of_employees", *req.NumberOfEmployees)
	}
	if req.CompanyEmail != nil {
		addSet("company_email", *req.CompanyEmail)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for company %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on company %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE id = $%d
		RETURNING `+companyColumns,
		strings.Join(setClauses, ", "), argID)

	updated, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating company %s: %v\n", req.ID, err)
		return nil, mapPgError(err, "update company")
	}
	return updated, nil
}

// Delete removes a company by ID, returning the removed record. Jobs and
// their applications cascade at the schema level.
func (r *CompanyRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `DELETE FROM companies WHERE id = $1 RETURNING ` + companyColumns

	removed, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to delete non-existent company %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error deleting company %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to delete company: %w", err)
	}
	return removed, nil
}
