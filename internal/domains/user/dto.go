package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// EmailRule checks the address in its normalized (lowercase) form, so
// mixed-case input passes the same check as the stored representation.
// Emails compare case-insensitively everywhere; validation must not be
// stricter than the comparison.
var EmailRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if err := is.Email.Validate(NormalizeEmail(s)); err != nil {
		return validation.NewError("validation_is_email", "must be a valid email address")
	}
	return nil
})

// CreateUserRequest provisions a new admin or editor account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			EmailRule,
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// DeleteUserRequest identifies the account to lock out.
type DeleteUserRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r DeleteUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, EmailRule),
	)
}

// UserDTO is the public user representation, safe to expose.
type UserDTO struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Claims         []string  `json:"claims"`
	EmailConfirmed bool      `json:"email_confirmed"`
	LockedOut      bool      `json:"locked_out"`
	CreatedAt      time.Time `json:"created_at"`
}
