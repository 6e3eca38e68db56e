package security

import (
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	token, err := tm.GenerateAccessToken(42, "user@test.com", domain.UserRoleOwner)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, domain.UserRoleOwner, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenHasRefreshType(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	token, err := tm.GenerateRefreshToken(42, "user@test.com")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)
	other := NewTokenManager("another-secret-0123456789abcdefghijk", 60, 10080)

	token, err := tm.GenerateAccessToken(1, "user@test.com", domain.UserRoleCustomer)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	_, err := tm.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
