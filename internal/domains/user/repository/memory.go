package repository

import (
	"context"
	"sync"

	"wiki-backend/internal/domains/user"
)

// memoryRepository keeps identities in a map, keyed by normalized email.
// Used by tests and local development without a database.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewMemoryRepository() user.Repository {
	return &memoryRepository{users: make(map[string]user.User)}
}

func (r *memoryRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.NormalizeEmail(u.Email)
	if _, ok := r.users[key]; ok {
		return user.ErrEmailAlreadyExists
	}

	stored := *u
	stored.Email = key
	r.users[key] = stored
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[user.NormalizeEmail(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	found := u
	return &found, nil
}

func (r *memoryRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.NormalizeEmail(u.Email)
	if _, ok := r.users[key]; !ok {
		return user.ErrUserNotFound
	}

	stored := *u
	stored.Email = key
	r.users[key] = stored
	return nil
}

func (r *memoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[user.NormalizeEmail(email)]
	return ok, nil
}
