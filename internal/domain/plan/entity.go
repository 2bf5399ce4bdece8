// internal/domain/plan/entity.go
package plan

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// ServicePlan is a purchasable dummy-ticket product (e.g. one-way reservation,
// round trip, hotel booking proof).
type ServicePlan struct {
	ID            int64          `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Slug          string         `json:"slug" db:"slug"`
	Description   sql.NullString `json:"description,omitempty" db:"description"`
	Price         float64        `json:"price" db:"price"`
	Currency      string         `json:"currency" db:"currency"`
	Features      pq.StringArray `json:"features,omitempty" db:"features"`
	DeliveryHours int            `json:"delivery_hours" db:"delivery_hours"`
	SortOrder     int            `json:"sort_order" db:"sort_order"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt     sql.NullTime   `json:"deleted_at,omitempty" db:"deleted_at"`
}

type PlanStats struct {
	TotalPlans  int64 `json:"total_plans"`
	ActivePlans int64 `json:"active_plans"`
}
