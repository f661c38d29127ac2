// Package repositories holds the postgres data access layer. Repos return
// apperr kinds for the two outcomes services branch on: missing rows and
// unique violations.
package repositories

import (
	"errors"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// notFound maps pgx.ErrNoRows onto apperr.ErrNotFound, passing other
// errors through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFoundf(format, args...)
	}
	return err
}

// conflict maps a unique constraint violation onto apperr.ErrConflict,
// passing other errors through.
func conflict(err error, format string, args ...any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflictf(format, args...)
	}
	return err
}

// clampLimit keeps page sizes sane.
func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

// textArray guards NOT NULL text[] columns: pgx encodes a nil slice as
// SQL NULL, an empty one as '{}'.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
