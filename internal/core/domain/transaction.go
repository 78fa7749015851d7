package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether the type is INCOME or EXPENSE.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Currency is a descriptive code attached to a transaction. Amounts are never
// converted; the code is metadata only.
type Currency string

const (
	CurrencyUSD   Currency = "USD"
	CurrencyEUR   Currency = "EUR"
	CurrencyGBP   Currency = "GBP"
	CurrencyINR   Currency = "INR"
	CurrencyJPY   Currency = "JPY"
	CurrencyCNY   Currency = "CNY"
	CurrencyAUD   Currency = "AUD"
	CurrencyCAD   Currency = "CAD"
	CurrencyOther Currency = "OTHER"
)

// IsValid reports whether the currency code is in the supported enumeration.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyJPY,
		CurrencyCNY, CurrencyAUD, CurrencyCAD, CurrencyOther:
		return true
	}
	return false
}

// PaymentMethod enumerates how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCheque       PaymentMethod = "CHEQUE"
	PaymentDD           PaymentMethod = "DD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentOther        PaymentMethod = "OTHER"
)

// IsValid reports whether the payment method is in the supported enumeration.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCheque, PaymentDD, PaymentBankTransfer,
		PaymentCard, PaymentUPI, PaymentOther:
		return true
	}
	return false
}

// Transaction is the central fact row; all reporting is a query plus a fold
// over a set of these. Amount is a non-negative fixed-precision decimal, the
// sign is carried by Type.
type Transaction struct {
	TransactionID   string          `json:"id" db:"id"`
	Type            TransactionType `json:"type" db:"type"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Currency        Currency        `json:"currency" db:"currency"`
	Description     string          `json:"description" db:"description"`
	Purpose         *string         `json:"purpose" db:"purpose"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" db:"paymentMethod"`
	PayerPayee      string          `json:"payerPayee" db:"payerPayee"`
	RecipientGiver  *string         `json:"recipientGiver" db:"recipientGiver"`
	Location        *string         `json:"location" db:"location"`
	TransactionDate time.Time       `json:"transactionDate" db:"transactionDate"`
	OrganizationID  string          `json:"organizationId" db:"organizationId"`
	CreatedByID     string          `json:"createdById" db:"createdById"`
	CategoryID      *string         `json:"categoryId" db:"categoryId"`
	Timestamps

	// CategoryName is populated by repository joins for reporting and
	// responses; it is not a column of the transaction table itself.
	CategoryName *string `json:"categoryName,omitempty" db:"categoryName"`

	Attachments []Attachment `json:"attachments,omitempty" db:"-"`
}

// Attachment is a file owned exclusively by one transaction and destroyed with it.
type Attachment struct {
	AttachmentID  string    `json:"id" db:"id"`
	Filename      string    `json:"filename" db:"filename"`
	OriginalName  string    `json:"originalName" db:"originalName"`
	MimeType      string    `json:"mimeType" db:"mimeType"`
	Size          int64     `json:"size" db:"size"`
	Path          string    `json:"path" db:"path"`
	TransactionID string    `json:"transactionId" db:"transactionId"`
	CreatedAt     time.Time `json:"createdAt" db:"createdAt"`
}
