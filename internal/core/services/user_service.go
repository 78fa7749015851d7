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
	"github.com/orgledger/orgledger-backend/internal/utils"
)

// userService implements the UserService interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserService {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserService = (*userService)(nil)

func (s *userService) GetUser(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, organizationID, userID)
}

func (s *userService) ListUsers(ctx context.Context, organizationID string) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx, organizationID)
}

// CreateUser adds a user to the caller's organization. A SUPER_ADMIN can only
// come into existence through registration, never through this path.
func (s *userService) CreateUser(ctx context.Context, organizationID string, req dto.CreateUserRequest) (*domain.User, error) {
	if !req.Role.IsValid() || req.Role == domain.RoleSuperAdmin {
		return nil, apperrors.NewValidationFailedError("role must be ADMIN, USER or VIEWER")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Role:           req.Role,
		IsActive:       true,
		OrganizationID: organizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("organization_id", organizationID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, organizationID, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByID(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Role != nil {
		if !req.Role.IsValid() || *req.Role == domain.RoleSuperAdmin {
			return nil, apperrors.NewValidationFailedError("role must be ADMIN, USER or VIEWER")
		}
		existing.Role = *req.Role
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	return existing, nil
}
