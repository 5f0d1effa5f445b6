package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx so repositories can
// run inside or outside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates constraint violations into storage sentinel errors.
// A unique-index violation is the authoritative Conflict signal; the
// check-then-write race is closed at this layer, not above it.
func mapPgError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: duplicate key on %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: referenced row missing (%s): %w", op, pgErr.ConstraintName, storage.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// buildListQuery assembles a SELECT with optional AND-ed conditions and a
// stable default ordering.
func buildListQuery(baseQuery string, conditions []string) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	return queryBuilder.String()
}
