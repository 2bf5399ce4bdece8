// internal/domain/booking/entity.go
package booking

import (
	"database/sql"
	"time"
)

// Payment states for the status column.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
	PaymentCancelled = "cancelled"
)

// Fulfillment states for the booking_status column.
const (
	StatusReceived   = "received"
	StatusProcessing = "processing"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID               int64          `json:"id" db:"id"`
	Reference        string         `json:"reference" db:"reference"`
	UserID           string         `json:"user_id" db:"user_id"`
	PlanID           sql.NullInt64  `json:"plan_id,omitempty" db:"plan_id"`
	PlanName         sql.NullString `json:"plan_name,omitempty" db:"plan_name"`
	VendorID         sql.NullInt64  `json:"vendor_id,omitempty" db:"vendor_id"`
	Amount           float64        `json:"amount" db:"amount"`
	Currency         string         `json:"currency" db:"currency"`
	Status           string         `json:"status" db:"status"`
	BookingStatus    string         `json:"booking_status" db:"booking_status"`
	PassengerDetails []byte         `json:"-" db:"passenger_details"`
	Passengers       []Passenger    `json:"passengers"`
	Route            sql.NullString `json:"route,omitempty" db:"route"`
	TravelDate       sql.NullTime   `json:"travel_date,omitempty" db:"travel_date"`
	Notes            sql.NullString `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt        sql.NullTime   `json:"deleted_at,omitempty" db:"deleted_at"`
}

type BookingStats struct {
	TotalBookings   int64   `json:"total_bookings"`
	PendingBookings int64   `json:"pending_bookings"`
	PaidBookings    int64   `json:"paid_bookings"`
	RevenueUSD      float64 `json:"revenue_usd"`
}

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded, PaymentCancelled:
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is a known fulfillment state.
func ValidBookingStatus(s string) bool {
	switch s {
	case StatusReceived, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
