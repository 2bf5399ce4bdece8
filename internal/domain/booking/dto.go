// internal/domain/booking/dto.go
package booking

import "time"

type CreateBookingRequest struct {
	UserID     string      `json:"user_id" binding:"required,max=64"`
	PlanID     *int64      `json:"plan_id"`
	Amount     float64     `json:"amount" binding:"min=0"`
	Currency   string      `json:"currency" binding:"omitempty,len=3"`
	Passengers []Passenger `json:"passengers" binding:"required,min=1"`
	Route      string      `json:"route" binding:"max=255"`
	TravelDate *time.Time  `json:"travel_date"`
	Notes      string      `json:"notes"`
}

type UpdateBookingRequest struct {
	PlanID     *int64      `json:"plan_id"`
	Amount     *float64    `json:"amount" binding:"omitempty,min=0"`
	Currency   *string     `json:"currency" binding:"omitempty,len=3"`
	Passengers []Passenger `json:"passengers"`
	Route      *string     `json:"route" binding:"omitempty,max=255"`
	TravelDate *time.Time  `json:"travel_date"`
	Notes      *string     `json:"notes"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"omitempty"`
	BookingStatus string `json:"booking_status" binding:"omitempty"`
}

type AssignVendorRequest struct {
	VendorID int64 `json:"vendor_id" binding:"required"`
}

type BookingListFilters struct {
	Status        string     `form:"status"`
	BookingStatus string     `form:"booking_status"`
	Search        string     `form:"search"` // reference, user id, route
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	SortBy        string     `form:"sort_by"`
	SortOrder     string     `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type BookingListResponse struct {
	Bookings   []Booking `json:"bookings"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
