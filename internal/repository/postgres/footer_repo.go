// internal/repository/postgres/footer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/footer"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FooterRepository struct {
	db *pgxpool.Pool
}

func NewFooterRepository(db *pgxpool.Pool) *FooterRepository {
	return &FooterRepository{db: db}
}

// GetPrimary retrieves the single footer record.
func (r *FooterRepository) GetPrimary(ctx context.Context) (*footer.Primary, error) {
	query := `
		SELECT id, tagline, email, phone, address, copyright, updated_at
		FROM footer_primary
		ORDER BY id ASC
		LIMIT 1
	`

	var p footer.Primary
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.Tagline, &p.Email, &p.Phone, &p.Address, &p.Copyright, &p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get footer: %w", err)
	}
	return &p, nil
}

// UpdatePrimary rewrites the footer record.
func (r *FooterRepository) UpdatePrimary(ctx context.Context, p *footer.Primary) error {
	query := `
		UPDATE footer_primary
		SET tagline = $1, email = $2, phone = $3, address = $4, copyright = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(
		ctx, query,
		p.Tagline, p.Email, p.Phone, p.Address, p.Copyright, time.Now(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update footer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// InsertItem adds an entry to a footer array section.
func (r *FooterRepository) InsertItem(ctx context.Context, it *footer.Item) error {
	query := `
		INSERT INTO footer_items (section, label, url, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, it.Section, it.Label, it.URL, it.SortOrder, it.IsVisible).
		Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert footer item: %w", err)
	}
	return nil
}

// UpdateItem rewrites one array entry.
func (r *FooterRepository) UpdateItem(ctx context.Context, id int64, it *footer.Item) error {
	query := `
		UPDATE footer_items
		SET section = $1, label = $2, url = $3, sort_order = $4, is_visible = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(
		ctx, query,
		it.Section, it.Label, it.URL, it.SortOrder, it.IsVisible, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update footer item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetItemVisibility toggles one entry's visibility.
func (r *FooterRepository) SetItemVisibility(ctx context.Context, id int64, visible bool) error {
	query := `UPDATE footer_items SET is_visible = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, visible, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set footer item visibility: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ListItems retrieves footer entries, optionally visible-only (public view).
func (r *FooterRepository) ListItems(ctx context.Context, visibleOnly bool) ([]footer.Item, error) {
	query := `
		SELECT id, section, label, url, sort_order, is_visible, created_at, updated_at
		FROM footer_items
	`
	if visibleOnly {
		query += ` WHERE is_visible = TRUE`
	}
	query += ` ORDER BY section ASC, sort_order ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list footer items: %w", err)
	}
	defer rows.Close()

	items := []footer.Item{}
	for rows.Next() {
		var it footer.Item
		if err := rows.Scan(&it.ID, &it.Section, &it.Label, &it.URL, &it.SortOrder, &it.IsVisible, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan footer item: %w", err)
		}
		items = append(items, it)
	}

	return items, nil
}

// DeleteItem removes one array entry.
func (r *FooterRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM footer_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete footer item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
