package dto

import (
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Transaction DTOs ---

// CreateTransactionRequest arrives as a multipart form (attachments travel as
// files alongside it), so numeric and date fields bind as strings and are
// parsed by the service.
type CreateTransactionRequest struct {
	Type            domain.TransactionType `form:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount          string                 `form:"amount" binding:"required"`
	Currency        domain.Currency        `form:"currency" binding:"omitempty,oneof=USD EUR GBP INR JPY CNY AUD CAD OTHER"`
	Description     string                 `form:"description" binding:"required"`
	Purpose         *string                `form:"purpose"`
	PaymentMethod   domain.PaymentMethod   `form:"paymentMethod" binding:"required,oneof=CASH CHEQUE DD BANK_TRANSFER CARD UPI OTHER"`
	PayerPayee      string                 `form:"payerPayee" binding:"required"`
	RecipientGiver  *string                `form:"recipientGiver"`
	Location        *string                `form:"location"`
	TransactionDate string                 `form:"transactionDate" binding:"required"`
	CategoryID      *string                `form:"categoryId"`
}

// AttachmentUpload describes one stored upload accompanying a new transaction.
type AttachmentUpload struct {
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	Path         string
}

// UpdateTransactionRequest defines the transaction fields that may change.
// Nil fields are left untouched.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal      `json:"amount"`
	Currency        *domain.Currency      `json:"currency" binding:"omitempty,oneof=USD EUR GBP INR JPY CNY AUD CAD OTHER"`
	Description     *string               `json:"description"`
	Purpose         *string               `json:"purpose"`
	PaymentMethod   *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH CHEQUE DD BANK_TRANSFER CARD UPI OTHER"`
	PayerPayee      *string               `json:"payerPayee"`
	RecipientGiver  *string               `json:"recipientGiver"`
	Location        *string               `json:"location"`
	TransactionDate *time.Time            `json:"transactionDate"`
	CategoryID      *string               `json:"categoryId"`
}

// ListTransactionsQuery binds the list endpoint's query string.
type ListTransactionsQuery struct {
	Type      *domain.TransactionType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	StartDate *string                 `form:"startDate"`
	EndDate   *string                 `form:"endDate"`
	Page      int                     `form:"page,default=1" binding:"min=1"`
	Limit     int                     `form:"limit,default=50" binding:"min=1,max=200"`
}

// Paging bounds shared by query binding defaults and the service-side clamp.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Normalize clamps out-of-range paging values so callers that bypass query
// binding still produce a valid page window.
func (q *ListTransactionsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
}

// AttachmentResponse defines data returned for one attachment.
type AttachmentResponse struct {
	AttachmentID  string    `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"originalName"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	Path          string    `json:"path"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"id"`
	Type            domain.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	Currency        domain.Currency        `json:"currency"`
	Description     string                 `json:"description"`
	Purpose         *string                `json:"purpose,omitempty"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod"`
	PayerPayee      string                 `json:"payerPayee"`
	RecipientGiver  *string                `json:"recipientGiver,omitempty"`
	Location        *string                `json:"location,omitempty"`
	TransactionDate time.Time              `json:"transactionDate"`
	OrganizationID  string                 `json:"organizationId"`
	CreatedByID     string                 `json:"createdById"`
	CategoryID      *string                `json:"categoryId"`
	CategoryName    *string                `json:"categoryName,omitempty"`
	Attachments     []AttachmentResponse   `json:"attachments"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// Pagination reports offset paging metadata consistent with the same filter.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToAttachmentResponse converts domain.Attachment to DTO.
func ToAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:  a.AttachmentID,
		Filename:      a.Filename,
		OriginalName:  a.OriginalName,
		MimeType:      a.MimeType,
		Size:          a.Size,
		Path:          a.Path,
		TransactionID: a.TransactionID,
		CreatedAt:     a.CreatedAt,
	}
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	attachments := make([]AttachmentResponse, len(t.Attachments))
	for i := range t.Attachments {
		attachments[i] = ToAttachmentResponse(&t.Attachments[i])
	}
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Description:     t.Description,
		Purpose:         t.Purpose,
		PaymentMethod:   t.PaymentMethod,
		PayerPayee:      t.PayerPayee,
		RecipientGiver:  t.RecipientGiver,
		Location:        t.Location,
		TransactionDate: t.TransactionDate,
		OrganizationID:  t.OrganizationID,
		CreatedByID:     t.CreatedByID,
		CategoryID:      t.CategoryID,
		CategoryName:    t.CategoryName,
		Attachments:     attachments,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToListTransactionsResponse builds the paginated list payload.
func ToListTransactionsResponse(txns []domain.Transaction, total int64, page, limit int) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txns))
	for i := range txns {
		list[i] = ToTransactionResponse(&txns[i])
	}
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return ListTransactionsResponse{
		Transactions: list,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}
}
