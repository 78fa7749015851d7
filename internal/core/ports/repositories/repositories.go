package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction control shared by repositories.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// SchemaManager owns the physical schema. EnsureSchema must be safe to call
// on every process start, including concurrent cold starts.
type SchemaManager interface {
	// CheckConnection verifies a live connection to the backing store.
	// It never propagates the failure, it reports it as false.
	CheckConnection(ctx context.Context) bool

	// EnsureSchema probes for the schema and creates whatever is missing.
	EnsureSchema(ctx context.Context) error
}
