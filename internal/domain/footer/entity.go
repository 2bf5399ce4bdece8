// internal/domain/footer/entity.go
package footer

import (
	"database/sql"
	"time"
)

// Footer operation discriminators, carried in the write request.
const (
	OpUpdatePrimary   = "update_primary"
	OpAddToArray      = "add_to_array"
	OpUpdateArrayItem = "update_array_item"
)

// Primary is the single footer record: brand text plus contact fields.
type Primary struct {
	ID          int64          `json:"id" db:"id"`
	Tagline     sql.NullString `json:"tagline,omitempty" db:"tagline"`
	Email       sql.NullString `json:"email,omitempty" db:"email"`
	Phone       sql.NullString `json:"phone,omitempty" db:"phone"`
	Address     sql.NullString `json:"address,omitempty" db:"address"`
	Copyright   sql.NullString `json:"copyright,omitempty" db:"copyright"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Item is one entry in a footer array section (quick links, socials, legal).
type Item struct {
	ID        int64     `json:"id" db:"id"`
	Section   string    `json:"section" db:"section"`
	Label     string    `json:"label" db:"label"`
	URL       string    `json:"url" db:"url"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	IsVisible bool      `json:"is_visible" db:"is_visible"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Footer is the assembled public payload.
type Footer struct {
	Primary Primary           `json:"primary"`
	Items   map[string][]Item `json:"items"`
}
