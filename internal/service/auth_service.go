package service

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login authenticates a credential pair and issues a signed token. Failed
// attempts are not throttled.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}
	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}
	return s.tokenMgr.GenerateToken(user.ID, user.Username)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
