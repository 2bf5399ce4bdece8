// internal/domain/notification/entity.go
package notification

import (
	"database/sql"
	"time"
)

// Notification kinds pushed to the admin feed.
const (
	TypeNewBooking       = "new_booking"
	TypeDocumentUploaded = "document_uploaded"
	TypeSystem           = "system"
)

type Notification struct {
	ID        int64                  `json:"id" db:"id"`
	AdminID   sql.NullInt64          `json:"admin_id,omitempty" db:"admin_id"` // null = every admin
	Title     string                 `json:"title" db:"title"`
	Message   string                 `json:"message" db:"message"`
	Type      string                 `json:"type" db:"type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	IsRead    bool                   `json:"is_read" db:"is_read"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
	ReadAt    sql.NullTime           `json:"read_at,omitempty" db:"read_at"`
}
