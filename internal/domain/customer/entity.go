// internal/domain/customer/entity.go
package customer

import (
	"database/sql"
	"time"
)

// UserProfile is a raw profile row. Depending on which producer wrote it,
// the owning identity lives in auth_user_id, user_id or id.
type UserProfile struct {
	ID          string         `json:"id" db:"id"`
	AuthUserID  sql.NullString `json:"auth_user_id,omitempty" db:"auth_user_id"`
	UserID      sql.NullString `json:"user_id,omitempty" db:"user_id"`
	FirstName   sql.NullString `json:"first_name,omitempty" db:"first_name"`
	LastName    sql.NullString `json:"last_name,omitempty" db:"last_name"`
	Email       sql.NullString `json:"email,omitempty" db:"email"`
	PhoneNumber sql.NullString `json:"phone_number,omitempty" db:"phone_number"`
	City        sql.NullString `json:"city,omitempty" db:"city"`
	Country     sql.NullString `json:"country,omitempty" db:"country"`
	AvatarURL   sql.NullString `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// IdentityKey returns the first non-empty identifying id, matching the
// precedence the booking rows were written with.
func (p *UserProfile) IdentityKey() string {
	if p.AuthUserID.Valid && p.AuthUserID.String != "" {
		return p.AuthUserID.String
	}
	if p.UserID.Valid && p.UserID.String != "" {
		return p.UserID.String
	}
	return p.ID
}

// Customer is the derived view-model: one profile merged with its bookings.
type Customer struct {
	Key         string    `json:"key"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Orders      int       `json:"orders"`
	SpentUSD    float64   `json:"spent_usd"`
	JoinDate    time.Time `json:"join_date"`
}
