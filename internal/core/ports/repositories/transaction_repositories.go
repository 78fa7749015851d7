package repositories

import (
	"context"
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// TransactionFilter narrows transaction queries. Date bounds are inclusive.
type TransactionFilter struct {
	Type      *domain.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction with its category name
	// and attachments, scoped to an organization.
	FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions ordered by
	// transactionDate descending, plus the total count under the same filter.
	ListTransactions(ctx context.Context, organizationID string, filter TransactionFilter, limit, offset int) ([]domain.Transaction, int64, error)

	// FindTransactionsInWindow retrieves every transaction of an organization
	// whose transactionDate falls inside the inclusive window, newest first,
	// with category names joined in. Used by reporting.
	FindTransactionsInWindow(ctx context.Context, organizationID string, window domain.PeriodWindow) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and its attachment rows
	// atomically; either both are visible afterwards or neither.
	SaveTransaction(ctx context.Context, txn domain.Transaction, attachments []domain.Attachment) error

	// UpdateTransaction persists changed fields, scoped to an organization.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and, by cascade, its attachments.
	DeleteTransaction(ctx context.Context, organizationID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
