package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/retail_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	txm *TxManager
}

// Querier returns the transaction of ctx, or the pool.
func (r *BaseRepository) Querier(ctx context.Context) Querier {
	return r.txm.GetQuerier(ctx)
}

// Builder returns a squirrel builder using $n placeholders.
func (r *BaseRepository) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// mapPgError converts driver errors into application sentinels. what names the
// operation for the error message.
func mapPgError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrReferentialIntegrity, what, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, what, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
}
