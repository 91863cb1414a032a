package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (business rule) errors
var (
	ErrUserLockedOut = errors.New("user is already locked out")
)
