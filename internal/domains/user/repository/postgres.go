package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"wiki-backend/internal/domains/user"
)

// postgresRepository is the production implementation of user.Repository.
// Identities live in PostgreSQL; page content lives in the document store.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

// Migrate creates the users table. Called once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id              UUID PRIMARY KEY,
			email           TEXT NOT NULL UNIQUE,
			password_hash   TEXT NOT NULL,
			claims          TEXT[] NOT NULL DEFAULT '{}',
			email_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
			lockout_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			lockout_end     TIMESTAMPTZ,
			created_at      TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate users table: %w", err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, email, password_hash, claims,
			email_confirmed, lockout_enabled, lockout_end, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		user.NormalizeEmail(u.Email),
		u.PasswordHash,
		pq.Array(u.Claims),
		u.EmailConfirmed,
		u.LockoutEnabled,
		u.LockoutEnd,
		u.CreatedAt,
	)

	if err != nil {
		// 23505 = unique_violation: the email column is the only unique index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, claims,
		       email_confirmed, lockout_enabled, lockout_end, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, user.NormalizeEmail(email)).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		pq.Array(&u.Claims),
		&u.EmailConfirmed,
		&u.LockoutEnabled,
		&u.LockoutEnd,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET password_hash = $2, claims = $3,
		    email_confirmed = $4, lockout_enabled = $5, lockout_end = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		u.ID,
		u.PasswordHash,
		pq.Array(u.Claims),
		u.EmailConfirmed,
		u.LockoutEnabled,
		u.LockoutEnd,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, user.NormalizeEmail(email)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}
