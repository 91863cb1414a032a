package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wiki-backend/internal/domains/auth"
	"wiki-backend/internal/domains/user"
	"wiki-backend/pkg/jwt"
)

type authService struct {
	users      user.Repository
	tokens     auth.TokenStore
	jwtManager *jwt.Manager
	refreshTTL time.Duration
}

func NewAuthService(users user.Repository, tokens auth.TokenStore, jwtManager *jwt.Manager, refreshTTL time.Duration) auth.Service {
	return &authService{
		users:      users,
		tokens:     tokens,
		jwtManager: jwtManager,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) Authenticate(ctx context.Context, req auth.AuthenticateRequest, clientIP string) (*auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// user.ErrUserNotFound surfaces as 404: the original contract
		// distinguishes an unknown email from rejected credentials.
		return nil, err
	}

	// Lockout and wrong password collapse into the same error so the
	// response does not leak which check failed.
	if u.IsLockedOut(time.Now()) {
		return nil, auth.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrForbidden
	}

	return s.issuePair(ctx, u, clientIP)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string, clientIP string) (*auth.TokenPair, error) {
	record, err := s.tokens.Find(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	// The claim set is re-read from the user store, not copied from the
	// old token: role changes and lockouts take effect on next refresh.
	u, err := s.users.FindByEmail(ctx, record.Email)
	if err != nil {
		return nil, err
	}

	if u.IsLockedOut(time.Now()) {
		return nil, auth.ErrForbidden
	}

	// Rotate: consume the presented token before issuing a new one.
	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}

	return s.issuePair(ctx, u, clientIP)
}

func (s *authService) issuePair(ctx context.Context, u *user.User, clientIP string) (*auth.TokenPair, error) {
	accessToken, expiresAt, err := s.jwtManager.Generate(u.Email, u.Claims)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	opaque, err := generateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	record := &auth.RefreshToken{
		Token:    opaque,
		Email:    u.Email,
		ClientIP: clientIP,
		IssuedAt: time.Now(),
	}

	if err := s.tokens.Save(ctx, record, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &auth.TokenPair{
		JwtToken:     accessToken,
		RefreshToken: opaque,
		ExpiresAt:    expiresAt,
	}, nil
}

// generateSecureToken returns n random bytes hex-encoded.
func generateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
