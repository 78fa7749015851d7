package services

import (
	"context"
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/orgledger/orgledger-backend/internal/dto"
)

// AuthService handles registration and authentication.
type AuthService interface {
	// Register creates a new organization together with its SUPER_ADMIN user
	// and returns a signed token for the new user.
	Register(ctx context.Context, req dto.RegisterRequest) (string, *domain.User, *domain.Organization, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, *domain.Organization, error)

	// CurrentUser loads the authenticated caller and their organization.
	CurrentUser(ctx context.Context, organizationID, userID string) (*domain.User, *domain.Organization, error)
}

// OrganizationService manages the caller's own organization.
type OrganizationService interface {
	GetOrganization(ctx context.Context, organizationID string) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error)
}

// UserService manages users inside one organization.
type UserService interface {
	GetUser(ctx context.Context, organizationID, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, organizationID string) ([]domain.User, error)
	CreateUser(ctx context.Context, organizationID string, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, organizationID, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// CategoryService manages categories inside one organization.
type CategoryService interface {
	ListCategories(ctx context.Context, organizationID string, categoryType *domain.TransactionType) ([]domain.Category, error)
	CreateCategory(ctx context.Context, organizationID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, organizationID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, organizationID, categoryID string) error
}

// TransactionService manages the ledger's fact rows inside one organization.
type TransactionService interface {
	GetTransaction(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, organizationID string, query dto.ListTransactionsQuery) ([]domain.Transaction, int64, error)
	CreateTransaction(ctx context.Context, organizationID, creatorUserID string, req dto.CreateTransactionRequest, uploads []dto.AttachmentUpload) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, organizationID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, organizationID, transactionID string) error
}

// ServiceContainer bundles every service implementation for injection into
// the HTTP layer.
type ServiceContainer struct {
	Auth         AuthService
	Organization OrganizationService
	User         UserService
	Category     CategoryService
	Transaction  TransactionService
	Reporting    ReportingService
}

// ReportingService computes period-bounded financial summaries.
type ReportingService interface {
	// Summary resolves the period window around the reference instant,
	// fetches the organization's transactions inside it and folds them into
	// totals and a category breakdown.
	Summary(ctx context.Context, organizationID string, periodType domain.PeriodType, reference time.Time) (*domain.Report, error)
}
