package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

// NewOrganizationRepository creates a new repository for organization data.
func NewOrganizationRepository(pool *pgxpool.Pool, timeout time.Duration) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{
		BaseRepository: BaseRepository{Pool: pool, Timeout: timeout},
	}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const fullOrganizationSelect = `
SELECT o."id", o."name", o."description", o."address", o."phone", o."email",
	o."createdAt", o."updatedAt"
FROM "Organization" o
`

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := fullOrganizationSelect + `WHERE o."id" = $1`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query organization", err)
	}
	defer rows.Close()

	org, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Organization])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect organization row", err)
	}
	return &org, nil
}

// SaveOrganizationWithOwner inserts the organization and its first
// SUPER_ADMIN user in one database transaction; registration is all-or-nothing.
func (r *PgxOrganizationRepository) SaveOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	orgQuery := `
		INSERT INTO "Organization" ("id", "name", "description", "address", "phone", "email", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, orgQuery,
		org.OrganizationID,
		org.Name,
		org.Description,
		org.Address,
		org.Phone,
		org.Email,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save organization "+org.OrganizationID, err)
	}

	userQuery := `
		INSERT INTO "User" ("id", "email", "password", "firstName", "lastName", "phone", "role", "isActive", "organizationId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, userQuery,
		owner.UserID,
		owner.Email,
		owner.PasswordHash,
		owner.FirstName,
		owner.LastName,
		owner.Phone,
		owner.Role,
		owner.IsActive,
		org.OrganizationID,
		owner.CreatedAt,
		owner.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("user with email " + owner.Email + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save owner user for organization "+org.OrganizationID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE "Organization"
		SET "name" = $1, "description" = $2, "address" = $3, "phone" = $4, "email" = $5, "updatedAt" = $6
		WHERE "id" = $7;
	`
	result, err := r.Pool.Exec(ctx, query,
		org.Name,
		org.Description,
		org.Address,
		org.Phone,
		org.Email,
		org.UpdatedAt,
		org.OrganizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update organization "+org.OrganizationID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("organization not found")
	}
	return nil
}
