package domain

// UserRole defines the possible roles a user can have within an organization.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
	RoleViewer     UserRole = "VIEWER"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User represents a member of an organization. A user belongs to exactly one
// organization for its lifetime; Email is unique across all tenants.
type User struct {
	UserID         string   `json:"id" db:"id"`
	Email          string   `json:"email" db:"email"`
	PasswordHash   string   `json:"-" db:"password"`
	FirstName      string   `json:"firstName" db:"firstName"`
	LastName       string   `json:"lastName" db:"lastName"`
	Phone          *string  `json:"phone" db:"phone"`
	Role           UserRole `json:"role" db:"role"`
	IsActive       bool     `json:"isActive" db:"isActive"`
	OrganizationID string   `json:"organizationId" db:"organizationId"`
	Timestamps
}
