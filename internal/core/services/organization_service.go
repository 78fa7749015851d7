package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
)

// organizationService implements the OrganizationService interface.
type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationService {
	return &organizationService{organizationRepo: organizationRepo}
}

var _ portssvc.OrganizationService = (*organizationService)(nil)

func (s *organizationService) GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.organizationRepo.FindOrganizationByID(ctx, organizationID)
}

func (s *organizationService) UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	existing, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	existing.UpdatedAt = time.Now()

	if err := s.organizationRepo.UpdateOrganization(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update organization",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization updated", slog.String("organization_id", organizationID))
	return existing, nil
}
