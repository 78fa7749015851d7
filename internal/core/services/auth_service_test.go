package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/core/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/utils"
	"github.com/orgledger/orgledger-backend/pkg/config"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	args := m.Called(ctx, organizationID, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, organizationID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User) error {
	args := m.Called(ctx, org, owner)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// --- Test Suite ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockOrgRepo  *MockOrganizationRepository
	cfg          *config.Config
	service      portssvc.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.mockOrgRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "owner@acme.test",
		Password:         "password123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		OrganizationName: "Acme Corp",
	}

	suite.mockOrgRepo.On("SaveOrganizationWithOwner", ctx,
		mock.MatchedBy(func(org domain.Organization) bool {
			return org.Name == "Acme Corp" && org.OrganizationID != ""
		}),
		mock.MatchedBy(func(owner domain.User) bool {
			return owner.Email == req.Email &&
				owner.Role == domain.RoleSuperAdmin &&
				owner.IsActive &&
				owner.PasswordHash != req.Password
		})).Return(nil).Once()

	token, user, org, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Require().NotNil(org)
	suite.NotEmpty(token)
	suite.Equal(org.OrganizationID, user.OrganizationID)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(org.OrganizationID, claims.OrganizationID)
	suite.Equal(domain.RoleSuperAdmin, claims.Role)

	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:            "taken@acme.test",
		Password:         "password123",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		OrganizationName: "Acme Corp",
	}

	suite.mockOrgRepo.On("SaveOrganizationWithOwner", ctx, mock.Anything, mock.Anything).
		Return(apperrors.NewConflictError("email already registered")).Once()

	token, user, org, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(user)
	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	orgID := uuid.NewString()
	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "member@acme.test",
		PasswordHash:   hash,
		Role:           domain.RoleUser,
		IsActive:       true,
		OrganizationID: orgID,
	}
	org := &domain.Organization{OrganizationID: orgID, Name: "Acme Corp"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()

	token, loggedIn, loggedInOrg, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    user.Email,
		Password: password,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.Equal(orgID, loggedInOrg.OrganizationID)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(orgID, claims.OrganizationID)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "member@acme.test",
		PasswordHash: hash,
		IsActive:     true,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, _, _, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID")
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@acme.test").
		Return(nil, apperrors.ErrNotFound).Once()
	hash, hashErr := utils.HashPassword("right-password")
	suite.Require().NoError(hashErr)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "member@acme.test").
		Return(&domain.User{Email: "member@acme.test", PasswordHash: hash, IsActive: true}, nil).Once()

	_, _, _, unknownErr := suite.service.Login(ctx, dto.LoginRequest{Email: "ghost@acme.test", Password: "x"})
	_, _, _, wrongErr := suite.service.Login(ctx, dto.LoginRequest{Email: "member@acme.test", Password: "x"})

	suite.Require().Error(unknownErr)
	suite.Require().Error(wrongErr)
	// Both failures must read identically so the endpoint cannot be used to
	// enumerate registered emails.
	suite.Equal(unknownErr.Error(), wrongErr.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveAccount() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "inactive@acme.test",
		PasswordHash: hash,
		IsActive:     false,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, _, _, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestCurrentUser_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "member@acme.test",
		Role:           domain.RoleUser,
		IsActive:       true,
		OrganizationID: orgID,
	}
	org := &domain.Organization{OrganizationID: orgID, Name: "Acme Corp"}

	suite.mockUserRepo.On("FindUserByID", ctx, orgID, user.UserID).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(org, nil).Once()

	gotUser, gotOrg, err := suite.service.CurrentUser(ctx, orgID, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, gotUser.UserID)
	suite.Equal(orgID, gotOrg.OrganizationID)
}

func (suite *AuthServiceTestSuite) TestCurrentUser_NotFound() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, orgID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CurrentUser(ctx, orgID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID")
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
