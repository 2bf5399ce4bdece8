// internal/repository/postgres/faq_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/content"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FAQRepository struct {
	db *pgxpool.Pool
}

func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{db: db}
}

// ========== Sections ==========

// CreateSection inserts a new FAQ section.
func (r *FAQRepository) CreateSection(ctx context.Context, s *content.FAQSection) error {
	query := `
		INSERT INTO faq_sections (slug, title, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, s.Slug, s.Title, s.SortOrder).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faq section: %w", err)
	}
	return nil
}

// ListSections retrieves all live sections in display order.
func (r *FAQRepository) ListSections(ctx context.Context) ([]content.FAQSection, error) {
	query := `
		SELECT id, slug, title, sort_order, created_at, updated_at, deleted_at
		FROM faq_sections
		WHERE deleted_at IS NULL
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq sections: %w", err)
	}
	defer rows.Close()

	sections := []content.FAQSection{}
	for rows.Next() {
		var s content.FAQSection
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq section: %w", err)
		}
		sections = append(sections, s)
	}

	return sections, nil
}

// UpdateSection rewrites section fields.
func (r *FAQRepository) UpdateSection(ctx context.Context, id int64, s *content.FAQSection) error {
	query := `
		UPDATE faq_sections SET title = $1, sort_order = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, s.Title, s.SortOrder, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update faq section: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// DeleteSection soft deletes a section and its items.
func (r *FAQRepository) DeleteSection(ctx context.Context, id int64) error {
	now := time.Now()

	result, err := r.db.Exec(ctx,
		`UPDATE faq_sections SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		now, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq section: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if _, err := r.db.Exec(ctx,
		`UPDATE faq_items SET deleted_at = $1, updated_at = $1 WHERE section_id = $2 AND deleted_at IS NULL`,
		now, id); err != nil {
		return fmt.Errorf("failed to delete section items: %w", err)
	}
	return nil
}

// ========== Items ==========

// CreateItem inserts a new FAQ item.
func (r *FAQRepository) CreateItem(ctx context.Context, it *content.FAQItem) error {
	query := `
		INSERT INTO faq_items (section_id, question, answer, sort_order, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, it.SectionID, it.Question, it.Answer, it.SortOrder, it.IsPublished).
		Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faq item: %w", err)
	}
	return nil
}

// FindItem retrieves an item by ID.
func (r *FAQRepository) FindItem(ctx context.Context, id int64) (*content.FAQItem, error) {
	query := `
		SELECT id, section_id, question, answer, sort_order, is_published,
		       created_at, updated_at, deleted_at
		FROM faq_items
		WHERE id = $1 AND deleted_at IS NULL
	`

	var it content.FAQItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.SectionID, &it.Question, &it.Answer, &it.SortOrder,
		&it.IsPublished, &it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find faq item: %w", err)
	}
	return &it, nil
}

// ListItems retrieves items, optionally restricted to one section or to
// published content only.
func (r *FAQRepository) ListItems(ctx context.Context, sectionID int64, publishedOnly bool) ([]content.FAQItem, error) {
	conditions := "deleted_at IS NULL"
	args := []interface{}{}
	argPos := 1

	if sectionID > 0 {
		conditions += fmt.Sprintf(" AND section_id = $%d", argPos)
		args = append(args, sectionID)
		argPos++
	}
	if publishedOnly {
		conditions += " AND is_published = TRUE"
	}

	query := fmt.Sprintf(`
		SELECT id, section_id, question, answer, sort_order, is_published,
		       created_at, updated_at, deleted_at
		FROM faq_items
		WHERE %s
		ORDER BY sort_order ASC, id ASC
	`, conditions)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq items: %w", err)
	}
	defer rows.Close()

	items := []content.FAQItem{}
	for rows.Next() {
		var it content.FAQItem
		if err := rows.Scan(
			&it.ID, &it.SectionID, &it.Question, &it.Answer, &it.SortOrder,
			&it.IsPublished, &it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan faq item: %w", err)
		}
		items = append(items, it)
	}

	return items, nil
}

// UpdateItem rewrites item fields.
func (r *FAQRepository) UpdateItem(ctx context.Context, id int64, it *content.FAQItem) error {
	query := `
		UPDATE faq_items
		SET section_id = $1, question = $2, answer = $3, sort_order = $4,
		    is_published = $5, updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		it.SectionID, it.Question, it.Answer, it.SortOrder, it.IsPublished,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update faq item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// DeleteItem soft deletes an item and removes its translation rows.
func (r *FAQRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE faq_items SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete faq item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM faq_translations WHERE item_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete item translations: %w", err)
	}
	return nil
}

// ========== Translations ==========

// UpsertTranslation writes one locale's translation row.
func (r *FAQRepository) UpsertTranslation(ctx context.Context, itemID int64, locale string, body content.TranslationBody) error {
	query := `
		INSERT INTO faq_translations (item_id, locale, question, answer, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id, locale)
		DO UPDATE SET question = EXCLUDED.question, answer = EXCLUDED.answer, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, itemID, locale, body.Question, body.Answer, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert faq translation: %w", err)
	}
	return nil
}

// DeleteTranslation removes one locale's translation row if present.
func (r *FAQRepository) DeleteTranslation(ctx context.Context, itemID int64, locale string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM faq_translations WHERE item_id = $1 AND locale = $2`,
		itemID, locale); err != nil {
		return fmt.Errorf("failed to delete faq translation: %w", err)
	}
	return nil
}

// ListTranslations retrieves all translation rows for an item keyed by locale.
func (r *FAQRepository) ListTranslations(ctx context.Context, itemID int64) (map[string]content.TranslationBody, error) {
	query := `SELECT locale, question, answer FROM faq_translations WHERE item_id = $1`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq translations: %w", err)
	}
	defer rows.Close()

	translations := map[string]content.TranslationBody{}
	for rows.Next() {
		var locale string
		var body content.TranslationBody
		if err := rows.Scan(&locale, &body.Question, &body.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq translation: %w", err)
		}
		translations[locale] = body
	}

	return translations, nil
}
