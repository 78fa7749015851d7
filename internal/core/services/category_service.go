package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
)

// categoryService implements the CategoryService interface.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategoryService = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, organizationID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	if categoryType != nil && !categoryType.IsValid() {
		return nil, apperrors.NewValidationFailedError("type must be INCOME or EXPENSE")
	}
	return s.categoryRepo.ListCategories(ctx, organizationID, categoryType)
}

func (s *categoryService) CreateCategory(ctx context.Context, organizationID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationFailedError("type must be INCOME or EXPENSE")
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:     uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		OrganizationID: organizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("organization_id", organizationID),
			slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("organization_id", organizationID))
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, organizationID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationFailedError("name must not be empty")
		}
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	existing.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("category_id", categoryID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, organizationID, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, organizationID, categoryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Category deleted",
		slog.String("category_id", categoryID),
		slog.String("organization_id", organizationID))
	return nil
}
