package jwt

import (
	"testing"
	"time"

	"hospital-appointment-service/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(tokenType TokenType) Claims {
	return Claims{
		UserID:    uuid.New(),
		Role:      "patient",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateAccessToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})

	t.Run("valid", func(t *testing.T) {
		claims := validClaims(AccessToken)

		got, err := svc.ValidateAccessToken(sign(t, "secret", claims))
		require.NoError(t, err)
		assert.Equal(t, claims.UserID, got.UserID)
		assert.Equal(t, "patient", got.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(sign(t, "other", validClaims(AccessToken)))
		assert.Error(t, err)
	})

	t.Run("refresh token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(sign(t, "secret", validClaims(RefreshToken)))
		assert.ErrorIs(t, err, ErrNotAccessToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims(AccessToken)
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		_, err := svc.ValidateAccessToken(sign(t, "secret", claims))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing user", func(t *testing.T) {
		claims := validClaims(AccessToken)
		claims.UserID = uuid.Nil

		_, err := svc.ValidateAccessToken(sign(t, "secret", claims))
		assert.ErrorIs(t, err, ErrInvalidTokenUser)
	})
}
