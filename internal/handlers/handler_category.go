package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/middleware"
)

// categoryHandler handles category requests within the caller's organization.
type categoryHandler struct {
	categoryService portssvc.CategoryService
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategoryService) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers category routes. Viewers can read; any
// contributor can create; only admins reshape or remove the taxonomy.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategoryService) {
	h := newCategoryHandler(categoryService)

	contributors := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser)
	adminOnly := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", contributors, h.createCategory)
		categories.PUT("/:id", adminOnly, h.updateCategory)
		categories.DELETE("/:id", adminOnly, h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Lists the organization's categories, optionally filtered by type, sorted by name.
// @Tags categories
// @Produce json
// @Param type query string false "Filter by type (INCOME or EXPENSE)"
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var categoryType *domain.TransactionType
	if typeStr := c.Query("type"); typeStr != "" {
		t := domain.TransactionType(typeStr)
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be INCOME or EXPENSE"})
			return
		}
		categoryType = &t
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), identity.OrganizationID, categoryType)
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category in the caller's organization.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category Info"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already used for this type"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), identity.OrganizationID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Description Renames or re-describes a category. Admin roles only.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), identity.OrganizationID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category; its transactions become uncategorized. Admin roles only.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), identity.OrganizationID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
