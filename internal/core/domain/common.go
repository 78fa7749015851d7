package domain

import "time"

// Timestamps holds the standard row bookkeeping columns shared by all entities.
// CreatedAt is the row creation instant, distinct from any domain-level date
// such as Transaction.TransactionDate.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updatedAt"`
}
