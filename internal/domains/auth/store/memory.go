package store

import (
	"context"
	"sync"
	"time"

	"wiki-backend/internal/domains/auth"
)

type memoryEntry struct {
	record    auth.RefreshToken
	expiresAt time.Time
}

// memoryStore is the in-memory TokenStore used by tests.
type memoryStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryEntry
}

func NewMemoryStore() auth.TokenStore {
	return &memoryStore{tokens: make(map[string]memoryEntry)}
}

func (s *memoryStore) Save(_ context.Context, token *auth.RefreshToken, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.Token] = memoryEntry{
		record:    *token,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *memoryStore) Find(_ context.Context, token string) (*auth.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.tokens[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, auth.ErrRefreshTokenNotFound
	}

	record := entry.record
	return &record, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}
