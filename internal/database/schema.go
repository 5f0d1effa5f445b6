package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Account uniqueness (email, mobile phone), the disjunctive company
// name-or-email check, and the one-application-per-(job,user) rule all live
// here as unique indexes: the insert's constraint violation is the
// authoritative conflict signal, so concurrent requests cannot race a
// check-then-write gap.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	user_name TEXT NOT NULL,
	email TEXT NOT NULL,
	recovery_email TEXT NOT NULL DEFAULT '',
	mobile_phone TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	date_of_birth DATE,
	role TEXT NOT NULL CHECK (role IN ('user', 'companyHR')),
	status TEXT NOT NULL DEFAULT 'offline' CHECK (status IN ('online', 'offline')),
	otp_code TEXT,
	otp_expires_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
CREATE UNIQUE INDEX IF NOT EXISTS users_mobile_phone_key ON users (mobile_phone);

CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	company_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	number_of_employees INT NOT NULL DEFAULT 0,
	company_email TEXT NOT NULL,
	company_hr UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS companies_company_name_key ON companies (company_name);
CREATE UNIQUE INDEX IF NOT EXISTS companies_company_email_key ON companies (company_email);

CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	job_title TEXT NOT NULL,
	job_location TEXT NOT NULL CHECK (job_location IN ('onsite', 'remotely', 'hybrid')),
	working_time TEXT NOT NULL CHECK (working_time IN ('part-time', 'full-time')),
	seniority_level TEXT NOT NULL CHECK (seniority_level IN ('Junior', 'Mid-Level', 'Senior', 'Team-Lead', 'CTO')),
	job_description TEXT NOT NULL DEFAULT '',
	technical_skills TEXT NOT NULL DEFAULT '',
	soft_skills TEXT NOT NULL DEFAULT '',
	added_by UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	company_id UUID NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS jobs_company_id_idx ON jobs (company_id);

CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
	user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	user_tech_skills TEXT[] NOT NULL DEFAULT '{}',
	user_soft_skills TEXT[] NOT NULL DEFAULT '{}',
	resume_path TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS applications_job_user_key ON applications (job_id, user_id);
CREATE INDEX IF NOT EXISTS applications_user_id_idx ON applications (user_id);
`

// EnsureSchema creates the tables and unique indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	log.Println("Database schema ensured")
	return nil
}
