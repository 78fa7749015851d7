package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/middleware"
)

// organizationHandler serves the caller's own organization. The tenant comes
// from the token, never from the URL, so there is no organization ID path
// parameter anywhere.
type organizationHandler struct {
	organizationService portssvc.OrganizationService
}

// newOrganizationHandler creates a new organizationHandler.
func newOrganizationHandler(os portssvc.OrganizationService) *organizationHandler {
	return &organizationHandler{organizationService: os}
}

// registerOrganizationRoutes registers routes for the caller's organization.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationService) {
	h := newOrganizationHandler(organizationService)

	org := rg.Group("/organization")
	{
		org.GET("", h.getOrganization)
		org.PUT("",
			middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin),
			h.updateOrganization)
	}
}

// getOrganization godoc
// @Summary Get own organization
// @Description Returns the authenticated caller's organization.
// @Tags organization
// @Produce json
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organization [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	org, err := h.organizationService.GetOrganization(c.Request.Context(), identity.OrganizationID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// updateOrganization godoc
// @Summary Update own organization
// @Description Updates descriptive fields of the caller's organization. Admin roles only.
// @Tags organization
// @Accept json
// @Produce json
// @Param organization body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organization [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	org, err := h.organizationService.UpdateOrganization(c.Request.Context(), identity.OrganizationID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}
