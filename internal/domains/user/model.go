package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role claims attached to an identity. Provisioning assigns exactly one.
const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
)

// LockoutNever is the sentinel lockout end used for soft delete:
// a locked-out user with this timestamp never recovers on its own.
var LockoutNever = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"` // stored lowercased, compared case-insensitively
	PasswordHash   string     `json:"-"`
	Claims         []string   `json:"claims"`
	EmailConfirmed bool       `json:"email_confirmed"`
	LockoutEnabled bool       `json:"lockout_enabled"`
	LockoutEnd     *time.Time `json:"lockout_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IsLockedOut reports whether the account is locked at the given instant.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnabled && u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// HasClaim reports whether the user carries the given role claim.
func (u *User) HasClaim(role string) bool {
	for _, c := range u.Claims {
		if c == role {
			return true
		}
	}
	return false
}

// NormalizeEmail lowercases an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:             u.ID,
		Email:          u.Email,
		Claims:         u.Claims,
		EmailConfirmed: u.EmailConfirmed,
		LockedOut:      u.IsLockedOut(time.Now()),
		CreatedAt:      u.CreatedAt,
	}
}
