package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/utils"
	"github.com/orgledger/orgledger-backend/pkg/config"
)

// authService implements the AuthService interface.
type authService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	organizationRepo portsrepo.OrganizationRepositoryFacade
	cfg              *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, organizationRepo portsrepo.OrganizationRepositoryFacade, cfg *config.Config) portssvc.AuthService {
	return &authService{userRepo: userRepo, organizationRepo: organizationRepo, cfg: cfg}
}

var _ portssvc.AuthService = (*authService)(nil)

// Register creates an organization and its first SUPER_ADMIN user in one
// transaction, then issues a token for the new user.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (string, *domain.User, *domain.Organization, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return "", nil, nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.OrganizationName,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if req.Organization != nil {
		org.Description = req.Organization.Description
		org.Address = req.Organization.Address
		org.Phone = req.Organization.Phone
		org.Email = req.Organization.Email
	}

	owner := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           domain.RoleSuperAdmin,
		IsActive:       true,
		OrganizationID: org.OrganizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.organizationRepo.SaveOrganizationWithOwner(ctx, org, owner); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return "", nil, nil, apperrors.NewConflictError("a user with this email already exists")
		}
		s.LogError(ctx, err, "Failed to register organization",
			slog.String("organization_name", req.OrganizationName))
		return "", nil, nil, err
	}

	token, err := utils.GenerateJWT(&owner, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token after registration",
			slog.String("user_id", owner.UserID))
		return "", nil, nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	s.LogInfo(ctx, "Organization registered",
		slog.String("organization_id", org.OrganizationID),
		slog.String("user_id", owner.UserID))
	return token, &owner, &org, nil
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords produce the same error so the response does not reveal which
// accounts exist.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, *domain.Organization, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, nil, apperrors.NewAppError(401, "invalid credentials", nil)
		}
		return "", nil, nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, nil, apperrors.NewAppError(401, "invalid credentials", nil)
	}
	if !user.IsActive {
		return "", nil, nil, apperrors.NewForbiddenError("account is deactivated")
	}

	org, err := s.organizationRepo.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load organization during login",
			slog.String("organization_id", user.OrganizationID))
		return "", nil, nil, err
	}

	token, err := utils.GenerateJWT(user, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", nil, nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, user, org, nil
}

// CurrentUser loads the caller's user row and organization for the /me endpoint.
func (s *authService) CurrentUser(ctx context.Context, organizationID, userID string) (*domain.User, *domain.Organization, error) {
	user, err := s.userRepo.FindUserByID(ctx, organizationID, userID)
	if err != nil {
		return nil, nil, err
	}

	org, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load organization for current user",
			slog.String("organization_id", organizationID))
		return nil, nil, err
	}

	return user, org, nil
}
