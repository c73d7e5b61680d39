package services

import (
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (AuthService, repository.UserRepository, helper.Auth) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	auth := helper.SetupAuth("test-secret")
	return NewAuthService(users, auth), users, auth
}

func seedUser(t *testing.T, users repository.UserRepository, auth helper.Auth, status string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("s3cr3t-pass")
	require.NoError(t, err)
	u := &domain.User{
		Email:        "admin@lsp.test",
		PasswordHash: hash,
		NamaLengkap:  "Administrator",
		Role:         domain.RoleAdmin,
		Status:       status,
	}
	require.NoError(t, users.CreateUser(u))
	return u
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, users, auth := newAuthService(t)
	seedUser(t, users, auth, "active")

	user, token, err := svc.Login("Admin@LSP.test", "s3cr3t-pass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	principal, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, auth := newAuthService(t)
	seedUser(t, users, auth, "active")

	_, _, err := svc.Login("admin@lsp.test", "wrong")
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, err := svc.Login("nobody@lsp.test", "whatever")
	assert.Error(t, err)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, users, auth := newAuthService(t)
	seedUser(t, users, auth, "suspended")

	_, _, err := svc.Login("admin@lsp.test", "s3cr3t-pass")
	assert.ErrorContains(t, err, "not active")
}
