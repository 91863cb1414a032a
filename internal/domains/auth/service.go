package auth

import "context"

// Service issues and refreshes token pairs.
type Service interface {
	// Authenticate validates credentials and returns a signed access token
	// plus an opaque refresh token bound to the client IP.
	// Unknown email -> user.ErrUserNotFound; wrong password or locked-out
	// account -> ErrForbidden.
	Authenticate(ctx context.Context, req AuthenticateRequest, clientIP string) (*TokenPair, error)

	// Refresh exchanges a refresh token for a new pair. The presented
	// token is consumed: refresh tokens rotate on every use.
	Refresh(ctx context.Context, refreshToken string, clientIP string) (*TokenPair, error)
}
