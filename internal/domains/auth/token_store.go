package auth

import (
	"context"
	"time"
)

// TokenStore persists refresh tokens. A token just saved must be
// immediately findable: the Refresh flow relies on read-after-write
// consistency.
type TokenStore interface {
	// Save stores the token record with the given TTL.
	Save(ctx context.Context, token *RefreshToken, ttl time.Duration) error

	// Find returns the record for the opaque token string.
	// Returns ErrRefreshTokenNotFound when absent or expired.
	Find(ctx context.Context, token string) (*RefreshToken, error)

	// Delete removes a token. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
}
