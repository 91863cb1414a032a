package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wiki-backend/internal/domains/user"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*user.UserDTO, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) CreateAdmin(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	return s.create(ctx, req, user.RoleAdmin)
}

func (s *userService) CreateEditor(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	return s.create(ctx, req, user.RoleEditor)
}

func (s *userService) create(ctx context.Context, req user.CreateUserRequest, role string) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := user.NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   string(passwordHash),
		Claims:         []string{role},
		EmailConfirmed: true, // provisioned accounts skip verification
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

// Delete models deletion as a permanent lockout rather than removal, so
// version history keeps resolvable author identities.
func (s *userService) Delete(ctx context.Context, email string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if u.IsLockedOut(time.Now()) {
		return user.ErrUserLockedOut
	}

	lockoutEnd := user.LockoutNever
	u.LockoutEnabled = true
	u.LockoutEnd = &lockoutEnd

	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("lock out user: %w", err)
	}

	return nil
}
