package dto

import (
	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// --- Auth DTOs ---

// RegisterRequest creates the first organization together with its SUPER_ADMIN user.
type RegisterRequest struct {
	Email            string               `json:"email" binding:"required,email"`
	Password         string               `json:"password" binding:"required,min=6"`
	FirstName        string               `json:"firstName" binding:"required"`
	LastName         string               `json:"lastName" binding:"required"`
	OrganizationName string               `json:"organizationName" binding:"required"`
	Organization     *OrganizationDetails `json:"organizationDetails"`
}

// OrganizationDetails are the optional descriptive fields at registration.
type OrganizationDetails struct {
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token        string              `json:"token"`
	User         UserResponse        `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}

// OrganizationSummary is the compact organization shape embedded in auth responses.
type OrganizationSummary struct {
	OrganizationID string `json:"id"`
	Name           string `json:"name"`
}

// MeResponse is the authenticated caller's profile, without a fresh token.
type MeResponse struct {
	User         UserResponse        `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}

// ToMeResponse assembles the current-user payload from domain entities.
func ToMeResponse(user *domain.User, org *domain.Organization) MeResponse {
	return MeResponse{
		User: ToUserResponse(user),
		Organization: OrganizationSummary{
			OrganizationID: org.OrganizationID,
			Name:           org.Name,
		},
	}
}

// ToAuthResponse assembles the auth payload from domain entities.
func ToAuthResponse(token string, user *domain.User, org *domain.Organization) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  ToUserResponse(user),
		Organization: OrganizationSummary{
			OrganizationID: org.OrganizationID,
			Name:           org.Name,
		},
	}
}
