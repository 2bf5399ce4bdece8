// internal/repository/postgres/profile_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/customer"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, auth_user_id, user_id, first_name, last_name, email, phone_number,
	city, country, avatar_url, created_at, updated_at
`

func scanProfile(row pgx.Row) (*customer.UserProfile, error) {
	var p customer.UserProfile
	err := row.Scan(
		&p.ID, &p.AuthUserID, &p.UserID, &p.FirstName, &p.LastName, &p.Email,
		&p.PhoneNumber, &p.City, &p.Country, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll retrieves every profile; the customer rollup merges them with
// bookings in memory.
func (r *ProfileRepository) ListAll(ctx context.Context) ([]customer.UserProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_profiles ORDER BY created_at DESC`, profileColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []customer.UserProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}

	return profiles, nil
}

// FindByKey retrieves a profile by any of its identifying ids.
func (r *ProfileRepository) FindByKey(ctx context.Context, key string) (*customer.UserProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM user_profiles
		WHERE auth_user_id = $1 OR user_id = $1 OR id = $1
		LIMIT 1
	`, profileColumns)

	p, err := scanProfile(r.db.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return p, nil
}

// Update rewrites the editable profile fields.
func (r *ProfileRepository) Update(ctx context.Context, key string, p *customer.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
		    city = $5, country = $6, updated_at = $7
		WHERE auth_user_id = $8 OR user_id = $8 OR id = $8
	`

	result, err := r.db.Exec(
		ctx, query,
		p.FirstName, p.LastName, p.Email, p.PhoneNumber,
		p.City, p.Country, time.Now(), key,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateAvatar sets or clears the profile avatar URL.
func (r *ProfileRepository) UpdateAvatar(ctx context.Context, key string, avatarURL *string) error {
	query := `
		UPDATE user_profiles SET avatar_url = $1, updated_at = $2
		WHERE auth_user_id = $3 OR user_id = $3 OR id = $3
	`

	result, err := r.db.Exec(ctx, query, avatarURL, time.Now(), key)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes a profile row. Bookings keep their user_id; the rollup drops
// them once no profile matches.
func (r *ProfileRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM user_profiles WHERE auth_user_id = $1 OR user_id = $1 OR id = $1`

	result, err := r.db.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
