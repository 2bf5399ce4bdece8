package session

import "time"

// SessionData is the per-login record kept in Redis, keyed by admin ID + JTI.
type SessionData struct {
	AdminID   int64     `json:"admin_id"`
	JTI       string    `json:"jti"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	UserAgent string    `json:"user_agent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
