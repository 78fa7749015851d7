package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
)

// defaultQueryTimeout bounds store calls when no explicit timeout is configured.
const defaultQueryTimeout = 10 * time.Second

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool    *pgxpool.Pool
	Timeout time.Duration
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// queryCtx derives a bounded context for a single store call. Caller
// cancellation (client disconnect) propagates and aborts the query.
func (r *BaseRepository) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}
