package auth_test

import (
	"testing"
	"time"

	"catalog/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	tokens := auth.NewTokenManager("test_jwt_secret")

	tokenString, err := tokens.Issue("admin", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokens.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["sub"])
	assert.Contains(t, claims, "exp")
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	tokens := auth.NewTokenManager("test_jwt_secret")

	// Garbage
	_, err := tokens.Validate("invalid.token.string")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Wrong secret
	other, err := auth.NewTokenManager("other_secret").Issue("admin", time.Hour)
	require.NoError(t, err)
	_, err = tokens.Validate(other)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Expired
	expired, err := tokens.Issue("admin", -time.Hour)
	require.NoError(t, err)
	_, err = tokens.Validate(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Unexpected signing method
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "admin"})
	noneString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Validate(noneString)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
