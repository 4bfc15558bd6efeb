package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/trungle-dev/renty/internal/apperr"
)

// Postgres error codes the stores care about.
const (
	pgUniqueViolation = "23505"
	pgSerialization   = "40001"
	pgDeadlock        = "40P01"
)

// StoreError translates driver errors into the application error kinds
// so services and handlers never import driver packages.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Wrap(apperr.ErrNotFound, err, op)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.ErrTransient, err, op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperr.Wrap(apperr.ErrConflict, err, op)
		case pgSerialization, pgDeadlock:
			return apperr.Wrap(apperr.ErrTransient, err, op)
		}
	}

	return err
}
