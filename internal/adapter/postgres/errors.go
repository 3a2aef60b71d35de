package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lexilens-backend/internal/domain"
)

// pgCodes maps SQLSTATE codes to domain errors. Unlisted codes keep the
// original *pgconn.PgError.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: the referenced user or task is gone
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError converts pgx errors to domain errors, prefixed with the entity
// name and key. Context errors pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %v: %w", entity, key, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.ConstraintName, mapped)
			}
			return fmt.Errorf("%s %v: %w", entity, key, mapped)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
