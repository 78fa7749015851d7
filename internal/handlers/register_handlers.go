package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/middleware"
	"github.com/orgledger/orgledger-backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authRateLimit gin.HandlerFunc,
) {
	// Health check, unauthenticated so load balancers can probe it.
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth, authRateLimit)

	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the authenticated /api group and delegates to the
// per-entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrentUserRoute(api, services.Auth)
	registerOrganizationRoutes(api, services.Organization)
	registerUserRoutes(api, services.User)
	registerCategoryRoutes(api, services.Category)
	registerTransactionRoutes(api, services.Transaction, cfg)
	registerReportingRoutes(api, services.Reporting)
}
