// internal/repository/postgres/document_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farepass-service/internal/domain/document"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new uploaded document in pending state.
func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	query := `
		INSERT INTO documents (booking_id, user_id, kind, file_name, public_id, url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.BookingID, d.UserID, d.Kind, d.FileName, d.PublicID, d.URL, d.Status,
	).Scan(&d.ID, &d.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// FindByID retrieves a document by ID.
func (r *DocumentRepository) FindByID(ctx context.Context, id int64) (*document.Document, error) {
	query := `
		SELECT id, booking_id, user_id, kind, file_name, public_id, url, status,
		       review_note, reviewed_by, reviewed_at, created_at
		FROM documents
		WHERE id = $1
	`

	var d document.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.BookingID, &d.UserID, &d.Kind, &d.FileName, &d.PublicID,
		&d.URL, &d.Status, &d.ReviewNote, &d.ReviewedBy, &d.ReviewedAt, &d.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return &d, nil
}

// List retrieves documents with filters and pagination.
func (r *DocumentRepository) List(ctx context.Context, filters *document.DocumentListFilters) ([]document.Document, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}
	if filters.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argPos))
		args = append(args, filters.UserID)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM documents WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	query := fmt.Sprintf(`
		SELECT id, booking_id, user_id, kind, file_name, public_id, url, status,
		       review_note, reviewed_by, reviewed_at, created_at
		FROM documents
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := []document.Document{}
	for rows.Next() {
		var d document.Document
		if err := rows.Scan(
			&d.ID, &d.BookingID, &d.UserID, &d.Kind, &d.FileName, &d.PublicID,
			&d.URL, &d.Status, &d.ReviewNote, &d.ReviewedBy, &d.ReviewedAt, &d.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	return documents, total, nil
}

// Review records the review outcome. Only pending documents can be reviewed.
func (r *DocumentRepository) Review(ctx context.Context, id, reviewerID int64, status, note string) error {
	query := `
		UPDATE documents
		SET status = $1, review_note = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $5 AND status = $6
	`

	result, err := r.db.Exec(ctx, query, status, note, reviewerID, time.Now(), id, document.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to review document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrConflict
	}
	return nil
}

// Delete removes a document row.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// CountPending returns how many documents await review (dashboard card).
func (r *DocumentRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE status = $1`, document.StatusPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending documents: %w", err)
	}
	return count, nil
}
