package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/orgledger/orgledger-backend/internal/adapters/database/pgsql"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/core/services"
	"github.com/orgledger/orgledger-backend/internal/handlers"
	"github.com/orgledger/orgledger-backend/internal/middleware"
	"github.com/orgledger/orgledger-backend/pkg/config"
	"github.com/orgledger/orgledger-backend/pkg/database"
)

// @title OrgLedger Backend API
// @version 1.0
// @description Multi-tenant organization ledger backend.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established")

	// Verify connectivity and bring the schema up to date before serving.
	schemaStore := pgsql.NewSchemaStore(dbPool, cfg.DBTimeout, logger)
	if !schemaStore.CheckConnection(context.Background()) {
		logger.Error("Database is not reachable")
		os.Exit(1)
	}
	if err := schemaStore.EnsureSchema(context.Background()); err != nil {
		logger.Error("Failed to ensure database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database schema verified")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(corsMiddleware(cfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := buildServices(dbPool, cfg)
	handlers.RegisterRoutes(r, cfg, serviceContainer, authRateLimit(cfg, logger))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the repositories into the service layer.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	organizationRepo := pgsql.NewOrganizationRepository(dbPool, cfg.DBTimeout)
	userRepo := pgsql.NewUserRepository(dbPool, cfg.DBTimeout)
	categoryRepo := pgsql.NewCategoryRepository(dbPool, cfg.DBTimeout)
	transactionRepo := pgsql.NewTransactionRepository(dbPool, cfg.DBTimeout)

	return &portssvc.ServiceContainer{
		Auth:         services.NewAuthService(userRepo, organizationRepo, cfg),
		Organization: services.NewOrganizationService(organizationRepo),
		User:         services.NewUserService(userRepo),
		Category:     services.NewCategoryService(categoryRepo),
		Transaction:  services.NewTransactionService(transactionRepo, categoryRepo),
		Reporting:    services.NewReportingService(transactionRepo),
	}
}

// corsMiddleware builds the CORS policy from the configured origins.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

// authRateLimit builds the per-IP limiter for the public auth endpoints.
func authRateLimit(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		logger.Warn("Invalid AUTH_RATE_LIMIT, falling back to 20-M", slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("20-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
