package repositories

import (
	"context"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a category scoped to an organization.
	FindCategoryByID(ctx context.Context, organizationID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories of an organization ordered by name,
	// optionally filtered by transaction type.
	ListCategories(ctx context.Context, organizationID string, categoryType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category. A duplicate (name, type) within
	// the organization yields a conflict error.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory persists changed category fields, scoped to an organization.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category; referencing transactions keep
	// existing with a null category.
	DeleteCategory(ctx context.Context, organizationID, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
