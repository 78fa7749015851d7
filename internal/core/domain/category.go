package domain

// Category labels transactions of one type within one organization.
// (Name, OrganizationID, Type) is unique, so the same name may exist once per
// type per tenant.
type Category struct {
	CategoryID     string          `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    *string         `json:"description" db:"description"`
	Type           TransactionType `json:"type" db:"type"`
	OrganizationID string          `json:"organizationId" db:"organizationId"`
	Timestamps
}
