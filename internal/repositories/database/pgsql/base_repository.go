package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// translateWriteError maps constraint violations to application errors.
// entity and id only decorate the message.
func translateWriteError(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s %s already exists", apperrors.ErrDuplicate, entity, id)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s %s references an unknown row (%s)", apperrors.ErrValidation, entity, id, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s %s violates %s", apperrors.ErrValidation, entity, id, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to save %s %s: %w", entity, id, err)
}

// requireOneRow turns a write that matched nothing into apperrors.ErrNotFound.
func requireOneRow(tag pgconn.CommandTag, entity, id string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	return nil
}

// pageLimit applies the default page size.
func pageLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}
