// internal/domain/content/entity.go
package content

import (
	"database/sql"
	"time"
)

// DefaultLocale is the primary language; its translation row is always
// mirrored into the main record so primary content never depends on a
// translation row existing.
const DefaultLocale = "en"

type FAQSection struct {
	ID        int64        `json:"id" db:"id"`
	Slug      string       `json:"slug" db:"slug"`
	Title     string       `json:"title" db:"title"`
	SortOrder int          `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"deleted_at,omitempty" db:"deleted_at"`
}

type FAQItem struct {
	ID           int64                      `json:"id" db:"id"`
	SectionID    int64                      `json:"section_id" db:"section_id"`
	Question     string                     `json:"question" db:"question"`
	Answer       string                     `json:"answer" db:"answer"`
	SortOrder    int                        `json:"sort_order" db:"sort_order"`
	IsPublished  bool                       `json:"is_published" db:"is_published"`
	Translations map[string]TranslationBody `json:"translations,omitempty"`
	CreatedAt    time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at" db:"updated_at"`
	DeletedAt    sql.NullTime               `json:"deleted_at,omitempty" db:"deleted_at"`
}

// InfoPage is a long-form content page (e.g. "what is a dummy ticket").
// Steps carries list-type content, stored as a JSON array of strings.
type InfoPage struct {
	ID           int64                      `json:"id" db:"id"`
	Slug         string                     `json:"slug" db:"slug"`
	Title        string                     `json:"title" db:"title"`
	Content      string                     `json:"content" db:"content"`
	Steps        []string                   `json:"steps" db:"steps"`
	IsPublished  bool                       `json:"is_published" db:"is_published"`
	Translations map[string]TranslationBody `json:"translations,omitempty"`
	CreatedAt    time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at" db:"updated_at"`
	DeletedAt    sql.NullTime               `json:"deleted_at,omitempty" db:"deleted_at"`
}

// TranslationBody is one locale's content. FAQ items use Question/Answer,
// info pages use Title/Content (+ optional Steps); the unused pair stays empty.
type TranslationBody struct {
	Question string   `json:"question,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Steps    []string `json:"steps,omitempty"`
}
