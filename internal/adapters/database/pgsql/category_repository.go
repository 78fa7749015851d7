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

type PgxCategoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(pool *pgxpool.Pool, timeout time.Duration) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool, Timeout: timeout},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const fullCategorySelect = `
SELECT c."id", c."name", c."description", c."type", c."organizationId",
	c."createdAt", c."updatedAt"
FROM "Category" c
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, fullCategorySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, organizationID, categoryID string) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, `WHERE c."id" = $1 AND c."organizationId" = $2`, categoryID, organizationID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, organizationID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	if categoryType != nil {
		return r.getCategories(ctx,
			`WHERE c."organizationId" = $1 AND c."type" = $2 ORDER BY c."name" ASC`,
			organizationID, *categoryType)
	}
	return r.getCategories(ctx,
		`WHERE c."organizationId" = $1 ORDER BY c."name" ASC`,
		organizationID)
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO "Category" ("id", "name", "description", "type", "organizationId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Description,
		category.Type,
		category.OrganizationID,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("category " + category.Name + " already exists for this type")
		}
		return apperrors.NewAppError(500, "failed to save category "+category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE "Category"
		SET "name" = $1, "description" = $2, "updatedAt" = $3
		WHERE "id" = $4 AND "organizationId" = $5;
	`
	result, err := r.Pool.Exec(ctx, query,
		category.Name,
		category.Description,
		category.UpdatedAt,
		category.CategoryID,
		category.OrganizationID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("category " + category.Name + " already exists for this type")
		}
		return apperrors.NewAppError(500, "failed to update category "+category.CategoryID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

// DeleteCategory removes the category row. The schema's ON DELETE SET NULL
// leaves referencing transactions in place with a null category, so they
// surface under the Uncategorized bucket on the next summary.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, organizationID, categoryID string) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	result, err := r.Pool.Exec(ctx,
		`DELETE FROM "Category" WHERE "id" = $1 AND "organizationId" = $2`,
		categoryID, organizationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}
