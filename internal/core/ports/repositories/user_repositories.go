package repositories

import (
	"context"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user scoped to an organization.
	FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by its globally unique email.
	// Used only by authentication, before a tenant is known.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users of an organization, newest first.
	ListUsers(ctx context.Context, organizationID string) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changed user fields, scoped to an organization.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
