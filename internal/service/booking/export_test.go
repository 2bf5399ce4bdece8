package booking

import (
	"database/sql"
	"reflect"
	"testing"
	"time"

	"farepass-service/internal/domain/booking"
)

func TestCSVRow(t *testing.T) {
	created := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	travel := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	b := &booking.Booking{
		Reference:     "FP-20240310-A1B2",
		UserID:        "user-17",
		PlanName:      sql.NullString{String: "Round Trip", Valid: true},
		Amount:        149.5,
		Currency:      "EUR",
		Status:        booking.PaymentPaid,
		BookingStatus: booking.StatusDelivered,
		Passengers: []booking.Passenger{
			{FirstName: "Amina", LastName: "Yusuf"},
			{FirstName: "Omar", LastName: ""},
		},
		Route:      sql.NullString{String: "NBO-DXB", Valid: true},
		TravelDate: sql.NullTime{Time: travel, Valid: true},
		CreatedAt:  created,
	}

	got := csvRow(b)
	want := []string{
		"FP-20240310-A1B2",
		"user-17",
		"Round Trip",
		"149.50",
		"EUR",
		booking.PaymentPaid,
		booking.StatusDelivered,
		"Amina Yusuf; Omar",
		"NBO-DXB",
		"2024-04-02",
		"2024-03-10T09:30:00Z",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("csvRow mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestCSVRowEmptyOptionals(t *testing.T) {
	b := &booking.Booking{
		Reference:     "FP-20240310-C3D4",
		UserID:        "user-18",
		Amount:        0,
		Currency:      "USD",
		Status:        booking.PaymentPending,
		BookingStatus: booking.StatusReceived,
		CreatedAt:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	got := csvRow(b)
	if got[2] != "" || got[7] != "" || got[8] != "" || got[9] != "" {
		t.Errorf("expected empty optional columns, got %v", got)
	}
	if got[3] != "0.00" {
		t.Errorf("expected zero amount formatted as 0.00, got %q", got[3])
	}
}
