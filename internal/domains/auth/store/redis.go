package store

import (
	"context"
	"fmt"
	"time"

	"wiki-backend/internal/domains/auth"
	"wiki-backend/pkg/cache"
)

const keyPrefix = "refresh_token:"

// redisStore keeps refresh tokens in Redis behind the cache interface.
// TTL expiry doubles as token expiry, so an expired token is simply
// not found.
type redisStore struct {
	cache cache.Cache
}

func NewRedisStore(c cache.Cache) auth.TokenStore {
	return &redisStore{cache: c}
}

func (s *redisStore) Save(ctx context.Context, token *auth.RefreshToken, ttl time.Duration) error {
	if err := s.cache.Set(ctx, keyPrefix+token.Token, token, ttl); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *redisStore) Find(ctx context.Context, token string) (*auth.RefreshToken, error) {
	var record auth.RefreshToken

	found, err := s.cache.Get(ctx, keyPrefix+token, &record)
	if err != nil {
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	if !found {
		return nil, auth.ErrRefreshTokenNotFound
	}

	return &record, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, keyPrefix+token); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
