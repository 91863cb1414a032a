package auth

import "errors"

var (
	// ErrForbidden covers both a wrong password and a locked-out account.
	// The two cases are deliberately indistinguishable to the caller.
	ErrForbidden = errors.New("credentials rejected")

	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
