package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("secret", 30*24*time.Hour, func() time.Time { return now })

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	userID, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	issuer := NewTokenIssuer("secret", time.Hour, func() time.Time { return clock })

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	clock = now.Add(2 * time.Hour)
	_, err = issuer.Parse(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypePermission))
	assert.Equal(t, "Token expired", err.(*apperrors.AppError).Message)
}

func TestTokenInvalid(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour, nil)
	other := NewTokenIssuer("other-secret", time.Hour, nil)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"no user id":   noUser,
		"no expiry":    noExpiry,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(token)
			require.Error(t, err)
			assert.Equal(t, "Invalid token", err.(*apperrors.AppError).Message)
		})
	}
}
