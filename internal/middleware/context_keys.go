package middleware

import (
	"context"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

const authIdentityKey = contextKey("authIdentity")

// AuthIdentity is the already-authenticated caller identity carried through
// the request context. The organization ID is the tenant every repository
// call is scoped by; it comes from the validated token, never from payloads.
type AuthIdentity struct {
	UserID         string
	OrganizationID string
	Role           domain.UserRole
}

// GetAuthFromCtx retrieves the authenticated identity from the context.
func GetAuthFromCtx(ctx context.Context) (*AuthIdentity, bool) {
	identity, ok := ctx.Value(authIdentityKey).(*AuthIdentity)
	return identity, ok
}
