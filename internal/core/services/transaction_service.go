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
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionService interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionService = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, organizationID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, organizationID string, query dto.ListTransactionsQuery) ([]domain.Transaction, int64, error) {
	query.Normalize()
	filter := portsrepo.TransactionFilter{Type: query.Type}

	if query.StartDate != nil && *query.StartDate != "" {
		start, err := parseDate(*query.StartDate)
		if err != nil {
			return nil, 0, apperrors.NewValidationFailedError("invalid startDate: " + *query.StartDate)
		}
		filter.StartDate = &start
	}
	if query.EndDate != nil && *query.EndDate != "" {
		end, err := parseDate(*query.EndDate)
		if err != nil {
			return nil, 0, apperrors.NewValidationFailedError("invalid endDate: " + *query.EndDate)
		}
		filter.EndDate = &end
	}

	offset := (query.Page - 1) * query.Limit
	return s.transactionRepo.ListTransactions(ctx, organizationID, filter, query.Limit, offset)
}

// CreateTransaction validates the request, resolves an optional category
// within the same tenant, and persists the transaction with its attachment
// rows atomically.
func (s *transactionService) CreateTransaction(ctx context.Context, organizationID, creatorUserID string, req dto.CreateTransactionRequest, uploads []dto.AttachmentUpload) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("amount must be a decimal number")
	}
	if amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	transactionDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("transactionDate must be an ISO 8601 date")
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.CurrencyINR
	}

	if err := validateTransactionEnums(req.Type, currency, req.PaymentMethod); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, organizationID, req.CategoryID, req.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            req.Type,
		Amount:          amount,
		Currency:        currency,
		Description:     req.Description,
		Purpose:         req.Purpose,
		PaymentMethod:   req.PaymentMethod,
		PayerPayee:      req.PayerPayee,
		RecipientGiver:  req.RecipientGiver,
		Location:        req.Location,
		TransactionDate: transactionDate,
		OrganizationID:  organizationID,
		CreatedByID:     creatorUserID,
		CategoryID:      categoryID,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	attachments := make([]domain.Attachment, len(uploads))
	for i, up := range uploads {
		attachments[i] = domain.Attachment{
			AttachmentID:  uuid.NewString(),
			Filename:      up.Filename,
			OriginalName:  up.OriginalName,
			MimeType:      up.MimeType,
			Size:          up.Size,
			Path:          up.Path,
			TransactionID: txn.TransactionID,
			CreatedAt:     now,
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, attachments); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("organization_id", organizationID),
		slog.String("type", string(txn.Type)))

	return s.transactionRepo.FindTransactionByID(ctx, organizationID, txn.TransactionID)
}

// UpdateTransaction applies the non-nil fields of the request on top of the
// existing row. The tenant check and the existence check are one and the
// same: a transaction of another organization reads as not found.
func (s *transactionService) UpdateTransaction(ctx context.Context, organizationID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount must not be negative")
		}
		existing.Amount = *req.Amount
	}
	if req.Currency != nil {
		if !req.Currency.IsValid() {
			return nil, apperrors.NewValidationFailedError("unsupported currency " + string(*req.Currency))
		}
		existing.Currency = *req.Currency
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, apperrors.NewValidationFailedError("description must not be empty")
		}
		existing.Description = *req.Description
	}
	if req.Purpose != nil {
		existing.Purpose = req.Purpose
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.IsValid() {
			return nil, apperrors.NewValidationFailedError("unsupported payment method " + string(*req.PaymentMethod))
		}
		existing.PaymentMethod = *req.PaymentMethod
	}
	if req.PayerPayee != nil {
		if *req.PayerPayee == "" {
			return nil, apperrors.NewValidationFailedError("payerPayee must not be empty")
		}
		existing.PayerPayee = *req.PayerPayee
	}
	if req.RecipientGiver != nil {
		existing.RecipientGiver = req.RecipientGiver
	}
	if req.Location != nil {
		existing.Location = req.Location
	}
	if req.TransactionDate != nil {
		existing.TransactionDate = *req.TransactionDate
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, organizationID, req.CategoryID, existing.Type)
		if err != nil {
			return nil, err
		}
		existing.CategoryID = categoryID
	}
	existing.UpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	return s.transactionRepo.FindTransactionByID(ctx, organizationID, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, organizationID, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, organizationID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("organization_id", organizationID))
	return nil
}

// resolveCategory verifies an optional category reference inside the tenant.
// An empty ID clears the category. A category of another tenant reads as not
// found, which surfaces as a validation failure here.
func (s *transactionService) resolveCategory(ctx context.Context, organizationID string, categoryID *string, txnType domain.TransactionType) (*string, error) {
	if categoryID == nil || *categoryID == "" {
		return nil, nil
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, *categoryID)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("category " + *categoryID + " does not exist")
	}
	if category.Type != txnType {
		return nil, apperrors.NewValidationFailedError("category type does not match transaction type")
	}
	return categoryID, nil
}

func validateTransactionEnums(txnType domain.TransactionType, currency domain.Currency, method domain.PaymentMethod) error {
	if !txnType.IsValid() {
		return apperrors.NewValidationFailedError("type must be INCOME or EXPENSE")
	}
	if !currency.IsValid() {
		return apperrors.NewValidationFailedError("unsupported currency " + string(currency))
	}
	if !method.IsValid() {
		return apperrors.NewValidationFailedError("unsupported payment method " + string(method))
	}
	return nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
