package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/middleware"
)

// authHandler handles registration and login requests.
type authHandler struct {
	authService portssvc.AuthService
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthService) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. These are the
// only unauthenticated endpoints, so the rate limit middleware applies here.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthService, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/auth", rateLimit)
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// registerCurrentUserRoute registers the authenticated /auth/me endpoint on
// the API group so it sits behind the token middleware.
func registerCurrentUserRoute(rg *gin.RouterGroup, authService portssvc.AuthService) {
	h := newAuthHandler(authService)
	rg.GET("/auth/me", h.me)
}

// register godoc
// @Summary Register a new organization
// @Description Creates an organization together with its SUPER_ADMIN user and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	token, user, org, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register organization")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(token, user, org))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, user, org, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(token, user, org))
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user and their organization.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, org, err := h.authService.CurrentUser(c.Request.Context(), identity.OrganizationID, identity.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch current user")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(user, org))
}
