package user

import "context"

// Service is the business logic contract for identity provisioning.
type Service interface {
	// GetByEmail returns the public representation of a user.
	GetByEmail(ctx context.Context, email string) (*UserDTO, error)

	// CreateAdmin provisions a user with the Admin role claim.
	CreateAdmin(ctx context.Context, req CreateUserRequest) (*UserDTO, error)

	// CreateEditor provisions a user with the Editor role claim.
	CreateEditor(ctx context.Context, req CreateUserRequest) (*UserDTO, error)

	// Delete soft-deletes a user by locking the account out permanently.
	// Returns ErrUserLockedOut when the account is already locked out.
	Delete(ctx context.Context, email string) error
}
