package security

import (
	"context"
	"testing"
	"time"

	"spartans-cricket-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.GenerateAdminToken("admin")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, TokenTypeAdmin, claims.Type)
	assert.Contains(t, claims.Roles, RoleAdmin)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)
		token, err := other.GenerateAdminToken("admin")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		past := &tokenManager{secret: []byte(testSecret), ttl: time.Minute, now: func() time.Time { return time.Now().Add(-time.Hour) }}
		token, err := past.GenerateAdminToken("admin")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongType", func(t *testing.T) {
		claims := AdminClaims{
			Username: "admin",
			Type:     "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, RequireAdmin(ctx), domain.ErrForbidden)

	ctx = WithPrincipal(ctx, &Principal{Username: "viewer"})
	assert.ErrorIs(t, RequireAdmin(ctx), domain.ErrForbidden)

	ctx = WithPrincipal(ctx, &Principal{Username: "admin", Roles: []string{RoleAdmin}})
	assert.NoError(t, RequireAdmin(ctx))
}
