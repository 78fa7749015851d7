package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/orgledger/orgledger-backend/internal/utils"
)

func testUser() *domain.User {
	return &domain.User{
		UserID:         "user-1",
		Email:          "member@acme.test",
		Role:           domain.RoleAdmin,
		OrganizationID: "org-1",
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), "secret", time.Hour, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), "secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), "secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
}
