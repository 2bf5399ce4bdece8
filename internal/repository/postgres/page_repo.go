// internal/repository/postgres/page_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/content"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PageRepository struct {
	db *pgxpool.Pool
}

func NewPageRepository(db *pgxpool.Pool) *PageRepository {
	return &PageRepository{db: db}
}

// Steps are stored as a JSON array of strings.
func marshalSteps(steps []string) ([]byte, error) {
	if steps == nil {
		steps = []string{}
	}
	data, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal steps: %w", err)
	}
	return data, nil
}

func unmarshalSteps(data []byte) []string {
	var steps []string
	if len(data) > 0 {
		// Parse failure degrades to an empty list; the editing placeholder is
		// restored by the service layer.
		json.Unmarshal(data, &steps)
	}
	return steps
}

// Create inserts a new info page.
func (r *PageRepository) Create(ctx context.Context, p *content.InfoPage) error {
	stepsJSON, err := marshalSteps(p.Steps)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO info_pages (slug, title, content, steps, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query, p.Slug, p.Title, p.Content, stepsJSON, p.IsPublished).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// FindByID retrieves a page by ID.
func (r *PageRepository) FindByID(ctx context.Context, id int64) (*content.InfoPage, error) {
	return r.findOne(ctx, `id = $1`, id)
}

// FindBySlug retrieves a page by slug.
func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*content.InfoPage, error) {
	return r.findOne(ctx, `slug = $1`, slug)
}

func (r *PageRepository) findOne(ctx context.Context, where string, arg interface{}) (*content.InfoPage, error) {
	query := fmt.Sprintf(`
		SELECT id, slug, title, content, steps, is_published,
		       created_at, updated_at, deleted_at
		FROM info_pages
		WHERE %s AND deleted_at IS NULL
	`, where)

	var p content.InfoPage
	var stepsJSON []byte

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Slug, &p.Title, &p.Content, &stepsJSON, &p.IsPublished,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find page: %w", err)
	}

	p.Steps = unmarshalSteps(stepsJSON)
	return &p, nil
}

// List retrieves pages, optionally published only.
func (r *PageRepository) List(ctx context.Context, publishedOnly bool) ([]content.InfoPage, error) {
	query := `
		SELECT id, slug, title, content, steps, is_published,
		       created_at, updated_at, deleted_at
		FROM info_pages
		WHERE deleted_at IS NULL
	`
	if publishedOnly {
		query += ` AND is_published = TRUE`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := []content.InfoPage{}
	for rows.Next() {
		var p content.InfoPage
		var stepsJSON []byte
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Content, &stepsJSON, &p.IsPublished,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		p.Steps = unmarshalSteps(stepsJSON)
		pages = append(pages, p)
	}

	return pages, nil
}

// Update rewrites the page fields.
func (r *PageRepository) Update(ctx context.Context, id int64, p *content.InfoPage) error {
	stepsJSON, err := marshalSteps(p.Steps)
	if err != nil {
		return err
	}

	query := `
		UPDATE info_pages
		SET title = $1, content = $2, steps = $3, is_published = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, p.Title, p.Content, stepsJSON, p.IsPublished, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a page and removes its translation rows.
func (r *PageRepository) SoftDelete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE info_pages SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM page_translations WHERE page_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete page translations: %w", err)
	}
	return nil
}

// UpsertTranslation writes one locale's translation row.
func (r *PageRepository) UpsertTranslation(ctx context.Context, pageID int64, locale string, body content.TranslationBody) error {
	stepsJSON, err := marshalSteps(body.Steps)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO page_translations (page_id, locale, title, content, steps, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (page_id, locale)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content,
		              steps = EXCLUDED.steps, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, pageID, locale, body.Title, body.Content, stepsJSON, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert page translation: %w", err)
	}
	return nil
}

// DeleteTranslation removes one locale's translation row if present.
func (r *PageRepository) DeleteTranslation(ctx context.Context, pageID int64, locale string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM page_translations WHERE page_id = $1 AND locale = $2`,
		pageID, locale); err != nil {
		return fmt.Errorf("failed to delete page translation: %w", err)
	}
	return nil
}

// ListTranslations retrieves all translation rows for a page keyed by locale.
func (r *PageRepository) ListTranslations(ctx context.Context, pageID int64) (map[string]content.TranslationBody, error) {
	query := `SELECT locale, title, content, steps FROM page_translations WHERE page_id = $1`

	rows, err := r.db.Query(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list page translations: %w", err)
	}
	defer rows.Close()

	translations := map[string]content.TranslationBody{}
	for rows.Next() {
		var locale string
		var body content.TranslationBody
		var stepsJSON []byte
		if err := rows.Scan(&locale, &body.Title, &body.Content, &stepsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan page translation: %w", err)
		}
		body.Steps = unmarshalSteps(stepsJSON)
		translations[locale] = body
	}

	return translations, nil
}
