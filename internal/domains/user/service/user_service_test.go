package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-backend/internal/domains/user"
	userRepo "wiki-backend/internal/domains/user/repository"
)

func newTestService() (user.Service, user.Repository) {
	repo := userRepo.NewMemoryRepository()
	return NewUserService(repo), repo
}

func TestCreateAdmin_AssignsAdminRole(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.CreateAdmin(context.Background(), user.CreateUserRequest{
		Email:    "root@example.com",
		Password: "super secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "root@example.com", dto.Email)
	assert.Equal(t, []string{user.RoleAdmin}, dto.Claims)
	assert.True(t, dto.EmailConfirmed)
	assert.False(t, dto.LockedOut)
}

func TestCreateEditor_AssignsEditorRole(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.CreateEditor(context.Background(), user.CreateUserRequest{
		Email:    "writer@example.com",
		Password: "super secret",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{user.RoleEditor}, dto.Claims)
}

func TestCreate_DuplicateEmailIsConflict(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, user.CreateUserRequest{
		Email:    "root@example.com",
		Password: "super secret",
	})
	require.NoError(t, err)

	before, err := repo.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)

	// Same address, different case: still a conflict, and the stored
	// record must be untouched.
	_, err = svc.CreateEditor(ctx, user.CreateUserRequest{
		Email:    "ROOT@example.com",
		Password: "another secret",
	})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	after, err := repo.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, before.Claims, after.Claims)
}

func TestCreate_ShortPasswordRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateAdmin(context.Background(), user.CreateUserRequest{
		Email:    "root@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestDelete_LocksOut(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEditor(ctx, user.CreateUserRequest{
		Email:    "writer@example.com",
		Password: "super secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "writer@example.com"))

	u, err := repo.FindByEmail(ctx, "writer@example.com")
	require.NoError(t, err)
	assert.True(t, u.LockoutEnabled)
	require.NotNil(t, u.LockoutEnd)
	assert.Equal(t, user.LockoutNever, *u.LockoutEnd)
}

func TestDelete_AlreadyLockedOutRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEditor(ctx, user.CreateUserRequest{
		Email:    "writer@example.com",
		Password: "super secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "writer@example.com"))

	err = svc.Delete(ctx, "writer@example.com")
	assert.ErrorIs(t, err, user.ErrUserLockedOut)
}

func TestDelete_UnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, user.CreateUserRequest{
		Email:    "Root@Example.com",
		Password: "super secret",
	})
	require.NoError(t, err)

	dto, err := svc.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", dto.Email)
}
