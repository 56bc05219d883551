package service_test

import (
	"context"
	"testing"
	"time"

	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := service.NewAuthService("admin", string(hash), tokens)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "root", "admin123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
