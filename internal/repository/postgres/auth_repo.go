// internal/repository/postgres/auth_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/auth"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type AuthRepository struct {
	db *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindAdminByEmail retrieves an active admin by email.
func (r *AuthRepository) FindAdminByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, full_name, roles, avatar_url, is_active,
		       last_login_at, created_at, updated_at
		FROM admin_users
		WHERE LOWER(email) = LOWER($1)
	`

	var a auth.AdminUser
	var roles pq.StringArray

	err := r.db.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &roles, &a.AvatarURL,
		&a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	a.Roles = roles
	return &a, nil
}

// FindAdminByID retrieves an admin by ID.
func (r *AuthRepository) FindAdminByID(ctx context.Context, id int64) (*auth.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, full_name, roles, avatar_url, is_active,
		       last_login_at, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`

	var a auth.AdminUser
	var roles pq.StringArray

	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &roles, &a.AvatarURL,
		&a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	a.Roles = roles
	return &a, nil
}

// UpdateLastLogin stamps the last successful login.
func (r *AuthRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE admin_users SET last_login_at = $1, updated_at = $1 WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *AuthRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateAvatar sets or clears the admin avatar URL.
func (r *AuthRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL *string) error {
	query := `UPDATE admin_users SET avatar_url = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, avatarURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
