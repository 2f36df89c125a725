package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		accessExpiry  time.Duration
		refreshExpiry time.Duration
	}{
		{
			name:          "standard initialization",
			secret:        "test-secret-key",
			accessExpiry:  1 * time.Hour,
			refreshExpiry: 7 * 24 * time.Hour,
		},
		{
			name:          "short expiry times",
			secret:        "short-secret",
			accessExpiry:  1 * time.Minute,
			refreshExpiry: 10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewTokenGenerator(tt.secret, tt.accessExpiry, tt.refreshExpiry)

			assert.NotNil(t, tg)
			assert.Equal(t, tt.secret, tg.secret)
			assert.Equal(t, tt.accessExpiry, tg.accessTokenExpiry)
			assert.Equal(t, tt.refreshExpiry, tg.refreshTokenExpiry)
		})
	}
}

func TestTokenGenerator_GenerateTokens(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 1*time.Hour, 7*24*time.Hour)

	t.Run("success", func(t *testing.T) {
		accessToken, refreshToken, err := tg.GenerateTokens(123, "learner@example.com", 1)
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.NotEqual(t, accessToken, refreshToken)

		// Both tokens should be well-formed JWTs
		assert.Len(t, strings.Split(accessToken, "."), 3)
		assert.Len(t, strings.Split(refreshToken, "."), 3)
	})

	t.Run("access token round trip", func(t *testing.T) {
		accessToken, _, err := tg.GenerateTokens(42, "round@trip.dev", 2)
		require.NoError(t, err)

		session, err := tg.ValidateAccessToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, 42, session.UserID)
		assert.Equal(t, "round@trip.dev", session.Email)
		assert.Equal(t, 2, session.Role)
	})
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	secret := "validate-secret"
	tg := NewTokenGenerator(secret, 1*time.Hour, 7*24*time.Hour)

	t.Run("invalid token string", func(t *testing.T) {
		session, err := tg.ValidateAccessToken("not-a-jwt")
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenGenerator("different-secret", 1*time.Hour, 7*24*time.Hour)
		accessToken, _, err := other.GenerateTokens(1, "a@b.c", 1)
		require.NoError(t, err)

		session, err := tg.ValidateAccessToken(accessToken)
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		_, refreshToken, err := tg.GenerateTokens(1, "a@b.c", 1)
		require.NoError(t, err)

		session, err := tg.ValidateAccessToken(refreshToken)
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenGenerator(secret, -1*time.Minute, 7*24*time.Hour)
		accessToken, _, err := expired.GenerateTokens(1, "a@b.c", 1)
		require.NoError(t, err)

		session, err := tg.ValidateAccessToken(accessToken)
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": float64(1),
			"email":   "a@b.c",
			"role":    float64(1),
			"type":    "access",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		session, err := tg.ValidateAccessToken(tokenString)
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestTokenGenerator_ValidateRefreshToken(t *testing.T) {
	tg := NewTokenGenerator("refresh-secret", 1*time.Hour, 7*24*time.Hour)

	t.Run("valid refresh token", func(t *testing.T) {
		_, refreshToken, err := tg.GenerateTokens(1, "a@b.c", 1)
		require.NoError(t, err)

		assert.NoError(t, tg.ValidateRefreshToken(refreshToken))
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		accessToken, _, err := tg.GenerateTokens(1, "a@b.c", 1)
		require.NoError(t, err)

		assert.Error(t, tg.ValidateRefreshToken(accessToken))
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Error(t, tg.ValidateRefreshToken("garbage"))
	})
}
