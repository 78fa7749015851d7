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

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	req := dto.CreateUserRequest{
		Email:     "new@acme.test",
		Password:  "password123",
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      domain.RoleUser,
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.OrganizationID == orgID &&
			user.Role == domain.RoleUser &&
			user.IsActive &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, orgID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal(orgID, created.OrganizationID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SuperAdminForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:     "sneaky@acme.test",
		Password:  "password123",
		FirstName: "Eve",
		LastName:  "Adversary",
		Role:      domain.RoleSuperAdmin,
	}

	created, err := suite.service.CreateUser(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestGetUser_ScopedByOrganization() {
	ctx := context.Background()
	orgID := uuid.NewString()
	userID := uuid.NewString()

	// A user of a different organization reads as not found.
	suite.mockUserRepo.On("FindUserByID", ctx, orgID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUser(ctx, orgID, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RoleEscalationForbidden() {
	ctx := context.Background()
	orgID := uuid.NewString()
	userID := uuid.NewString()
	superAdmin := domain.RoleSuperAdmin

	existing := &domain.User{UserID: userID, Role: domain.RoleUser, OrganizationID: orgID}
	suite.mockUserRepo.On("FindUserByID", ctx, orgID, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, orgID, userID, dto.UpdateUserRequest{Role: &superAdmin})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestUpdateUser_Deactivate() {
	ctx := context.Background()
	orgID := uuid.NewString()
	userID := uuid.NewString()
	inactive := false

	existing := &domain.User{UserID: userID, Role: domain.RoleUser, IsActive: true, OrganizationID: orgID}
	suite.mockUserRepo.On("FindUserByID", ctx, orgID, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return !user.IsActive && user.UserID == userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, orgID, userID, dto.UpdateUserRequest{IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	expected := []domain.User{{UserID: uuid.NewString(), OrganizationID: orgID}}

	suite.mockUserRepo.On("ListUsers", ctx, orgID).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, orgID)

	suite.Require().NoError(err)
	suite.Equal(expected, users)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
