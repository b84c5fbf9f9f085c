package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewTokenManager("test-secret")

	token, err := mgr.GenerateAccessToken(42, "admin@rentamaq.pe", []string{"admin"})
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "admin@rentamaq.pe", claims.Email)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").GenerateAccessToken(1, "", nil)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("secret").ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
