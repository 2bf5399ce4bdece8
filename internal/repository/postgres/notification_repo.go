// internal/repository/postgres/notification_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/notification"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification.
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (admin_id, title, message, type, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	var metadataJSON []byte
	var err error
	if n.Metadata != nil {
		metadataJSON, err = json.Marshal(n.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	err = r.db.QueryRow(
		ctx, query,
		n.AdminID, n.Title, n.Message, n.Type, metadataJSON,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListForAdmin retrieves notifications addressed to one admin or broadcast
// to every admin, newest first.
func (r *NotificationRepository) ListForAdmin(ctx context.Context, adminID int64, limit int) ([]notification.Notification, error) {
	if limit < 1 {
		limit = 50
	}

	query := `
		SELECT id, admin_id, title, message, type, metadata, is_read, created_at, read_at
		FROM notifications
		WHERE admin_id = $1 OR admin_id IS NULL
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, adminID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []notification.Notification{}
	for rows.Next() {
		var n notification.Notification
		var metadataJSON []byte
		if err := rows.Scan(
			&n.ID, &n.AdminID, &n.Title, &n.Message, &n.Type,
			&metadataJSON, &n.IsRead, &n.CreatedAt, &n.ReadAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(metadataJSON) > 0 {
			json.Unmarshal(metadataJSON, &n.Metadata)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for an admin.
func (r *NotificationRepository) UnreadCount(ctx context.Context, adminID int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE (admin_id = $1 OR admin_id IS NULL) AND is_read = FALSE
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, adminID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET is_read = TRUE, read_at = $1 WHERE id = $2 AND is_read = FALSE`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.RowsAffected() == 0 {
		// Already read or missing; verify which.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM notifications WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check notification: %w", err)
		}
		if !exists {
			return xerrors.ErrNotFound
		}
	}
	return nil
}

// MarkAllRead marks everything addressed to the admin as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, adminID int64) error {
	query := `
		UPDATE notifications SET is_read = TRUE, read_at = $1
		WHERE (admin_id = $2 OR admin_id IS NULL) AND is_read = FALSE
	`

	if _, err := r.db.Exec(ctx, query, time.Now(), adminID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// FindByID retrieves a notification by ID.
func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*notification.Notification, error) {
	query := `
		SELECT id, admin_id, title, message, type, metadata, is_read, created_at, read_at
		FROM notifications
		WHERE id = $1
	`

	var n notification.Notification
	var metadataJSON []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.AdminID, &n.Title, &n.Message, &n.Type,
		&metadataJSON, &n.IsRead, &n.CreatedAt, &n.ReadAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &n, nil
}
