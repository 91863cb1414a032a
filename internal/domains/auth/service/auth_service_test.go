package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wiki-backend/internal/domains/auth"
	authStore "wiki-backend/internal/domains/auth/store"
	"wiki-backend/internal/domains/user"
	userRepo "wiki-backend/internal/domains/user/repository"
	"wiki-backend/pkg/jwt"
)

const testPassword = "correct horse battery"

func newTestService(t *testing.T) (auth.Service, user.Repository) {
	t.Helper()

	users := userRepo.NewMemoryRepository()
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(users, authStore.NewMemoryStore(), manager, time.Hour)
	return svc, users
}

func seedUser(t *testing.T, users user.Repository, email string, lockedOut bool) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{
		Email:          user.NormalizeEmail(email),
		PasswordHash:   string(hash),
		Claims:         []string{user.RoleEditor},
		EmailConfirmed: true,
		CreatedAt:      time.Now(),
	}
	if lockedOut {
		u.LockoutEnabled = true
		end := user.LockoutNever
		u.LockoutEnd = &end
	}
	require.NoError(t, users.Create(context.Background(), u))
}

func TestAuthenticate_Success(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "alice@example.com", false)

	pair, err := svc.Authenticate(context.Background(), auth.AuthenticateRequest{
		Email:    "alice@example.com",
		Password: testPassword,
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.JwtToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), auth.AuthenticateRequest{
		Email:    "ghost@example.com",
		Password: testPassword,
	}, "10.0.0.1")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "alice@example.com", false)

	_, err := svc.Authenticate(context.Background(), auth.AuthenticateRequest{
		Email:    "alice@example.com",
		Password: "wrong password",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestAuthenticate_LockedOut(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "locked@example.com", true)

	// Even with the right password a locked-out account gets the same
	// error as a wrong password.
	_, err := svc.Authenticate(context.Background(), auth.AuthenticateRequest{
		Email:    "locked@example.com",
		Password: testPassword,
	}, "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestAuthenticate_CaseInsensitiveEmail(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "alice@example.com", false)

	_, err := svc.Authenticate(context.Background(), auth.AuthenticateRequest{
		Email:    "ALICE@Example.COM",
		Password: testPassword,
	}, "10.0.0.1")
	assert.NoError(t, err)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "alice@example.com", false)
	ctx := context.Background()

	pair, err := svc.Authenticate(ctx, auth.AuthenticateRequest{
		Email:    "alice@example.com",
		Password: testPassword,
	}, "10.0.0.1")
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, pair.RefreshToken, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The consumed token must be rejected on reuse.
	_, err = svc.Refresh(ctx, pair.RefreshToken, "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenNotFound)

	// The rotated token still works.
	_, err = svc.Refresh(ctx, next.RefreshToken, "10.0.0.1")
	assert.NoError(t, err)
}

func TestRefresh_UnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "deadbeef", "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrRefreshTokenNotFound)
}

func TestRefresh_LockedOutSinceIssue(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "alice@example.com", false)
	ctx := context.Background()

	pair, err := svc.Authenticate(ctx, auth.AuthenticateRequest{
		Email:    "alice@example.com",
		Password: testPassword,
	}, "10.0.0.1")
	require.NoError(t, err)

	u, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	u.LockoutEnabled = true
	end := user.LockoutNever
	u.LockoutEnd = &end
	require.NoError(t, users.Update(ctx, u))

	_, err = svc.Refresh(ctx, pair.RefreshToken, "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
