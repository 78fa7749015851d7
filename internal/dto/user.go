package dto

import (
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// --- User DTOs ---

// CreateUserRequest defines data for adding a user to the caller's organization.
type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Phone     *string         `json:"phone"`
	Role      domain.UserRole `json:"role" binding:"required,oneof=ADMIN USER VIEWER"`
}

// UpdateUserRequest defines the fields of a user that may change. Nil fields
// are left untouched.
type UpdateUserRequest struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Phone     *string          `json:"phone"`
	Role      *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN USER VIEWER"`
	IsActive  *bool            `json:"isActive"`
}

// UserResponse defines data returned for a user. The password hash never leaves the service.
type UserResponse struct {
	UserID         string          `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Phone          *string         `json:"phone,omitempty"`
	Role           domain.UserRole `json:"role"`
	IsActive       bool            `json:"isActive"`
	OrganizationID string          `json:"organizationId"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Role:           u.Role,
		IsActive:       u.IsActive,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to DTOs.
func ToListUsersResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return list
}
