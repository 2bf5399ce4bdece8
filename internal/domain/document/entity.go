// internal/domain/document/entity.go
package document

import (
	"database/sql"
	"time"
)

// Review states
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Document is an uploaded passenger document awaiting admin review
// (passport scan, visa copy, payment proof).
type Document struct {
	ID           int64          `json:"id" db:"id"`
	BookingID    sql.NullInt64  `json:"booking_id,omitempty" db:"booking_id"`
	UserID       string         `json:"user_id" db:"user_id"`
	Kind         string         `json:"kind" db:"kind"`
	FileName     string         `json:"file_name" db:"file_name"`
	PublicID     string         `json:"public_id" db:"public_id"`
	URL          string         `json:"url" db:"url"`
	Status       string         `json:"status" db:"status"`
	ReviewNote   sql.NullString `json:"review_note,omitempty" db:"review_note"`
	ReviewedBy   sql.NullInt64  `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt   sql.NullTime   `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Note   string `json:"note" binding:"max=500"`
}

type DocumentListFilters struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	UserID   string `form:"user_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
