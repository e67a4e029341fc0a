package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func newAuthFixture(t *testing.T) *service.AuthService {
	t.Helper()

	hashed, err := auth.HashPassword("waters", bcrypt.MinCost)
	require.NoError(t, err)

	users := repository.NewUserRepository([]domain.User{
		{ID: "1", Username: "yellowleopard753", Password: "jonjon"},
		{ID: "3", Username: "greenlion235", Password: hashed},
	})
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60}}
	return service.NewAuthService(cfg, users)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthFixture(t)

	token, _, err := svc.Login("yellowleopard753", "jonjon")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "yellowleopard753", claims.Username)
	assert.Equal(t, "1", claims.UserID)
}

func TestLoginBcryptStoredCredential(t *testing.T) {
	svc := newAuthFixture(t)

	token, _, err := svc.Login("greenlion235", "waters")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	for _, tc := range []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "yellowleopard753", "wrong"},
		{"unknown user", "nobody", "jonjon"},
		{"empty password", "yellowleopard753", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(tc.username, tc.password)
			require.Error(t, err)

			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
			assert.Equal(t, "Invalid credentials", domainErr.Message)
		})
	}
}
