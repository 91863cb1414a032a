package cache

import (
	"context"
	"time"
)

// Cache is the contract for the key-value layer. The refresh-token store
// and repositories depend on this interface, not on the Redis client.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found = false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with the given TTL. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Exists reports whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
