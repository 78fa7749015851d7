package dto

import (
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// --- Category DTOs ---

// CreateCategoryRequest defines data for creating a category.
type CreateCategoryRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description *string                `json:"description"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest defines the category fields that may change. The type
// is immutable once transactions reference the category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	CategoryID     string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    *string                `json:"description,omitempty"`
	Type           domain.TransactionType `json:"type"`
	OrganizationID string                 `json:"organizationId"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:     c.CategoryID,
		Name:           c.Name,
		Description:    c.Description,
		Type:           c.Type,
		OrganizationID: c.OrganizationID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to DTOs.
func ToListCategoriesResponse(categories []domain.Category) []CategoryResponse {
	list := make([]CategoryResponse, len(categories))
	for i := range categories {
		list[i] = ToCategoryResponse(&categories[i])
	}
	return list
}
