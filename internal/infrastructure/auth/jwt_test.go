package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration: expiration,
		Issuer:                "storefront-test",
	})
}

func TestGenerateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("admin", "admin")
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		token, err := svc.GenerateToken("admin", "admin")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "storefront-test", claims.Issuer)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-value",
			AccessTokenExpiration: time.Hour,
			Issuer:                "storefront-test",
		})
		token, err := other.GenerateToken("admin", "admin")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestService(-time.Minute)
		token, err := expired.GenerateToken("admin", "admin")
		require.NoError(t, err)

		_, err = expired.ValidateToken(token.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
