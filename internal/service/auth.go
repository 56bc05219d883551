package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	username     string
	passwordHash []byte
	tokens       security.TokenManager
}

// NewAuthService checks logins against the single configured administrator.
func NewAuthService(username, passwordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	// The hash is always compared so a wrong username costs the same as a wrong password.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		logger.WarnContext(ctx, "Admin login failed", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken(s.username)
	if err != nil {
		return "", err
	}
	logger.InfoContext(ctx, "Admin logged in", "username", username)
	return token, nil
}
