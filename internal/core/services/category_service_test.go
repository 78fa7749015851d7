package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/core/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	req := dto.CreateCategoryRequest{Name: "Travel", Type: domain.Expense}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(category domain.Category) bool {
		return category.Name == "Travel" &&
			category.Type == domain.Expense &&
			category.OrganizationID == orgID &&
			category.CategoryID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, orgID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("Travel", created.Name)
	suite.Equal(orgID, created.OrganizationID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Travel", Type: domain.TransactionType("TRANSFER")}

	created, err := suite.service.CreateCategory(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Rent", Type: domain.Expense}

	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.NewConflictError("category already exists")).Once()

	created, err := suite.service.CreateCategory(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestListCategories_WithTypeFilter() {
	ctx := context.Background()
	orgID := uuid.NewString()
	income := domain.Income
	expected := []domain.Category{{CategoryID: uuid.NewString(), Name: "Salary", Type: domain.Income}}

	suite.mockCategoryRepo.On("ListCategories", ctx, orgID, &income).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx, orgID, &income)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategories_InvalidType() {
	ctx := context.Background()
	bad := domain.TransactionType("BOTH")

	_, err := suite.service.ListCategories(ctx, uuid.NewString(), &bad)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "ListCategories")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_CrossTenantReadsAsNotFound() {
	ctx := context.Background()
	orgID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, orgID, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCategory(ctx, orgID, categoryID, dto.UpdateCategoryRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_EmptyNameRejected() {
	ctx := context.Background()
	orgID := uuid.NewString()
	categoryID := uuid.NewString()
	empty := ""

	existing := &domain.Category{CategoryID: categoryID, Name: "Supplies", Type: domain.Expense, OrganizationID: orgID}
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, orgID, categoryID).Return(existing, nil).Once()

	_, err := suite.service.UpdateCategory(ctx, orgID, categoryID, dto.UpdateCategoryRequest{Name: &empty})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("DeleteCategory", ctx, orgID, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, orgID, categoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
