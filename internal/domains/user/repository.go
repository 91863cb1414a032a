package user

import "context"

// Repository is the data access contract for identities. The interface
// allows swapping the Postgres implementation for the in-memory one in
// tests without touching the service layer.
type Repository interface {
	// Create persists a new user.
	// Returns ErrEmailAlreadyExists on a duplicate email (case-insensitive).
	Create(ctx context.Context, u *User) error

	// FindByEmail looks a user up by email, case-insensitively.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update overwrites claims and lockout state.
	// Returns ErrUserNotFound when the user does not exist.
	Update(ctx context.Context, u *User) error

	// ExistsByEmail reports whether an email is taken (case-insensitive).
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
