package repositories

import (
	"context"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// OrganizationReader defines read operations for organization data.
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization by its ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data.
type OrganizationWriter interface {
	// SaveOrganizationWithOwner persists a new organization together with its
	// first SUPER_ADMIN user atomically.
	SaveOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User) error

	// UpdateOrganization persists changed organization details.
	UpdateOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines all organization repository interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
