package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
)

// SchemaStore owns the physical schema of the ledger. It is invoked once per
// process lifetime before any repository call; in a serverless deployment
// many cold-starting processes may invoke it concurrently, so every
// statement it issues tolerates having already been executed.
type SchemaStore struct {
	BaseRepository
	logger *slog.Logger
}

// NewSchemaStore creates a schema store over the given pool.
func NewSchemaStore(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *SchemaStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaStore{
		BaseRepository: BaseRepository{Pool: pool, Timeout: timeout},
		logger:         logger,
	}
}

var _ portsrepo.SchemaManager = (*SchemaStore)(nil)

// CheckConnection verifies a live connection to the backing store. It never
// propagates the failure past this boundary; the cause is logged and false
// is returned.
func (s *SchemaStore) CheckConnection(ctx context.Context) bool {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	if err := s.Pool.Ping(ctx); err != nil {
		s.logger.Error("Database connection check failed", slog.String("error", err.Error()))
		return false
	}
	return true
}

// EnsureSchema probes for the root table and either verifies an existing
// schema or creates everything from the declarative definitions.
//
// On an existing schema the extension check and the primary-key default
// backfill are best-effort: a failure there is logged but must not block the
// caller, since the tables themselves keep working. On a fresh database any
// creation failure is fatal.
func (s *SchemaStore) EnsureSchema(ctx context.Context) error {
	if s.schemaExists(ctx) {
		s.logger.Info("Database schema exists")
		s.healExistingSchema(ctx)
		return nil
	}

	s.logger.Info("Tables not found, creating schema")
	if err := s.createSchema(ctx); err != nil {
		return err
	}
	s.logger.Info("Database schema created")
	return nil
}

// schemaExists probes the root table with a trivial scoped read.
func (s *SchemaStore) schemaExists(ctx context.Context) bool {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, probeRootTable)
	if err != nil {
		return false
	}
	rows.Close()
	return rows.Err() == nil
}

// healExistingSchema re-verifies the uuid extension and backfills missing
// primary-key defaults left behind by a prior partial run. Failures here are
// logged and swallowed: an already-created schema keeps working even if a
// defaulting tweak cannot be applied.
func (s *SchemaStore) healExistingSchema(ctx context.Context) {
	if err := s.ensureUUIDExtension(ctx); err != nil {
		s.logger.Warn("Could not verify uuid extension on existing schema", slog.String("error", err.Error()))
		return
	}

	for _, def := range schemaDefinitions {
		stmt := fmt.Sprintf(uuidDefaultBackfill, def.name)
		if err := s.exec(ctx, stmt); err != nil {
			s.logger.Warn("Could not backfill uuid default",
				slog.String("table", def.name),
				slog.String("error", err.Error()))
		}
	}
}

// createSchema creates the extension, every table and every index, in an
// order derived from the declared dependencies.
func (s *SchemaStore) createSchema(ctx context.Context) error {
	if err := s.ensureUUIDExtension(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to enable uuid extension", err)
	}

	for _, def := range orderedDefinitions(schemaDefinitions) {
		if err := s.exec(ctx, def.createSQL); err != nil {
			return apperrors.NewAppError(500, "failed to create table "+def.name, err)
		}
		for _, idx := range def.indexes {
			if err := s.exec(ctx, idx); err != nil {
				return apperrors.NewAppError(500, "failed to create index on "+def.name, err)
			}
		}
	}
	return nil
}

func (s *SchemaStore) ensureUUIDExtension(ctx context.Context) error {
	return s.exec(ctx, createUUIDExtension)
}

func (s *SchemaStore) exec(ctx context.Context, stmt string) error {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	_, err := s.Pool.Exec(ctx, stmt)
	return err
}
