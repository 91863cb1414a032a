package auth

import "time"

// RefreshToken is the stored record behind an opaque refresh token.
// The token string itself is the lookup key.
type RefreshToken struct {
	Token    string    `json:"token"`
	Email    string    `json:"email"`
	ClientIP string    `json:"client_ip"`
	IssuedAt time.Time `json:"issued_at"`
}

// TokenPair is returned by Authenticate and Refresh.
type TokenPair struct {
	JwtToken     string    `json:"jwt_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
