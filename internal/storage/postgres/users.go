package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, first_name, last_name, user_name, email, recovery_email, mobile_phone,
	password_hash, date_of_birth, role, status, otp_code, otp_expires_at, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.UserName,
		&u.Email,
		&u.RecoveryEmail,
		&u.MobilePhone,
		&u.PasswordHash,
		&u.DateOfBirth,
		&u.Role,
		&u.Status,
		&u.OTPCode,
		&u.OTPExpiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The caller is responsible for having hashed the
// password and derived the user name; uniqueness of email and mobile phone
// is enforced by the database and surfaces as storage.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
		INSERT INTO users (id, first_name, last_name, user_name, email, recovery_email, mobile_phone,
			password_hash, date_of_birth, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.UserName,
		user.Email,
		user.RecoveryEmail,
		user.MobilePhone,
		user.PasswordHash,
		user.DateOfBirth,
		user.Role,
		user.Status,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Printf("Error creating user with email %s: %v\n", user.Email, err)
		return nil, mapPgError(err, "create user")
	}

	log.Printf("User created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByLogin retrieves a user whose email or mobile phone matches the given
// identifiers. Either argument may be empty.
func (r *UserRepo) GetByLogin(ctx context.Context, email, mobilePhone string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR mobile_phone = $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, email, mobilePhone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by login identifier: %v\n", err)
		return nil, fmt.Errorf("failed to get user by login identifier: %w", err)
	}
	return user, nil
}

// GetByRecoveryEmail retrieves the user registered with the given recovery
// email (OTP issuance target).
func (r *UserRepo) GetByRecoveryEmail(ctx context.Context, recoveryEmail string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE recovery_email = $1 LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query, recoveryEmail))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with recovery email: %s\n", recoveryEmail)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by recovery email %s: %v\n", recoveryEmail, err)
		return nil, fmt.Errorf("failed to get user by recovery email: %w", err)
	}
	return user, nil
}

// ListByRecoveryEmail retrieves all users sharing a recovery email.
func (r *UserRepo) ListByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	query := buildListQuery(`SELECT `+userColumns+` FROM users`, []string{"recovery_email = $1"})

	rows, err := r.db.Query(ctx, query, recoveryEmail)
	if err != nil {
		log.Printf("Error querying users by recovery email %s: %v\n", recoveryEmail, err)
		return nil, fmt.Errorf("failed to query users by recovery email: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Printf("Error scanning user row: %v\n", err)
			return nil, fmt.Errorf("failed to scan users by recovery email: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users by recovery email: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// derivedUserName combines the final first and last name after a partial
// update, falling back to the stored parts for fields the request omits.
func derivedUserName(current *models.User, req *dto.UpdateUserRequest) string {
	first := current.FirstName
	if req.FirstName != nil {
		first = *req.FirstName
	}
	last := current.LastName
	if req.LastName != nil {
		last = *req.LastName
	}
	return first + " " + last
}

// Update modifies an existing user based on non-nil fields in the request
// DTO. The derived user name is refreshed when either name part changes.
func (r *UserRepo) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.RecoveryEmail != nil {
		addSet("recovery_email", *req.RecoveryEmail)
	}
	if req.MobilePhone != nil {
		addSet("mobile_phone", *req.MobilePhone)
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth %q: %w", *req.DOB, err)
		}
		addSet("date_of_birth", dob)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for user %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on user %s", req.ID)
	}

	if req.FirstName != nil || req.LastName != nil {
		// SET expressions read the pre-update row, so the derived name has
		// to be computed here from the final name parts.
		current, err := r.GetByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		addSet("user_name", derivedUserName(current, req))
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING `+userColumns,
		strings.Join(setClauses, ", "), argID)

	updated, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %s: %v\n", req.ID, err)
		return nil, mapPgError(err, "update user")
	}
	return updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, passwordHash, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating password for user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return updated, nil
}

// SetStatus flips the presence status (online on signin, offline on logout).
func (r *UserRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	query := `
		UPDATE users
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error setting status for user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to set user status: %w", err)
	}
	return updated, nil
}

// SetOTP stores a freshly issued recovery code and its expiry.
func (r *UserRepo) SetOTP(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET otp_code = $1, otp_expires_at = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, code, expiresAt, id)
	if err != nil {
		log.Printf("Error storing OTP for user %s: %v\n", id, err)
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ResetPassword sets the new hash and clears the OTP state in one statement;
// the recovery code is only consumed here, not at verification time.
func (r *UserRepo) ResetPassword(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users
		SET password_hash = $1, otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE email = $2
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, passwordHash, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for password reset with email: %s\n", email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error resetting password for %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to reset password: %w", err)
	}
	return updated, nil
}

// Delete removes a user by ID.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %s: %v\n", id, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Attempted to delete non-existent user %s\n", id)
		return storage.ErrNotFound
	}
	return nil
}
