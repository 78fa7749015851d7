package domain

// Organization is the unit of tenant isolation. Every other entity belongs to
// exactly one organization, directly or through its transaction.
type Organization struct {
	OrganizationID string  `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Description    *string `json:"description" db:"description"`
	Address        *string `json:"address" db:"address"`
	Phone          *string `json:"phone" db:"phone"`
	Email          *string `json:"email" db:"email"`
	Timestamps
}
