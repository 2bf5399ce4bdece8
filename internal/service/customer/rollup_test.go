package customer

import (
	"database/sql"
	"testing"
	"time"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/domain/currency"
	"farepass-service/internal/domain/customer"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func TestRollupDropsOrphanBookings(t *testing.T) {
	profiles := []customer.UserProfile{
		{ID: "P1", FirstName: ns("Ada"), CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	bookings := []booking.Booking{
		{UserID: "P2", Amount: 100, Currency: "USD", CreatedAt: time.Now()},
	}

	customers := Rollup(profiles, bookings, currency.RateTable{})
	if len(customers) != 1 {
		t.Fatalf("Rollup produced %d customers, want 1", len(customers))
	}
	if customers[0].Key != "P1" {
		t.Errorf("customer key = %q, want P1", customers[0].Key)
	}
	if customers[0].Orders != 0 {
		t.Errorf("orders = %d, want 0 (orphan booking must be dropped)", customers[0].Orders)
	}
}

func TestRollupEarliestDateWins(t *testing.T) {
	profileCreated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bookingCreated := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	profiles := []customer.UserProfile{
		{ID: "P1", FirstName: ns("Ada"), CreatedAt: profileCreated},
	}
	bookings := []booking.Booking{
		{UserID: "P1", Amount: 50, Currency: "USD", CreatedAt: bookingCreated},
	}

	customers := Rollup(profiles, bookings, currency.RateTable{})
	if !customers[0].JoinDate.Equal(bookingCreated) {
		t.Errorf("JoinDate = %v, want %v (earliest activity wins)", customers[0].JoinDate, bookingCreated)
	}
	if customers[0].Orders != 1 {
		t.Errorf("orders = %d, want 1", customers[0].Orders)
	}
	if customers[0].SpentUSD != 50 {
		t.Errorf("SpentUSD = %v, want 50", customers[0].SpentUSD)
	}
}

func TestRollupIdentityKeyPrecedence(t *testing.T) {
	profiles := []customer.UserProfile{
		{ID: "row-1", AuthUserID: ns("auth-1"), UserID: ns("user-1"), FirstName: ns("Ada"), CreatedAt: time.Now()},
		{ID: "row-2", UserID: ns("user-2"), FirstName: ns("Grace"), CreatedAt: time.Now()},
		{ID: "row-3", FirstName: ns("Edsger"), CreatedAt: time.Now()},
	}
	bookings := []booking.Booking{
		{UserID: "auth-1", Amount: 10, Currency: "USD", CreatedAt: time.Now()},
		{UserID: "user-2", Amount: 20, Currency: "USD", CreatedAt: time.Now()},
		{UserID: "row-3", Amount: 30, Currency: "USD", CreatedAt: time.Now()},
	}

	customers := Rollup(profiles, bookings, currency.RateTable{})
	if len(customers) != 3 {
		t.Fatalf("Rollup produced %d customers, want 3", len(customers))
	}
	for i, want := range []float64{10, 20, 30} {
		if customers[i].SpentUSD != want {
			t.Errorf("customer %d SpentUSD = %v, want %v", i, customers[i].SpentUSD, want)
		}
	}
}

func TestRollupSpendConversion(t *testing.T) {
	profiles := []customer.UserProfile{
		{ID: "P1", FirstName: ns("Ada"), CreatedAt: time.Now()},
	}
	bookings := []booking.Booking{
		{UserID: "P1", Amount: 92, Currency: "EUR", CreatedAt: time.Now()},
		{UserID: "P1", Amount: 100, Currency: "USD", CreatedAt: time.Now()},
	}

	customers := Rollup(profiles, bookings, currency.RateTable{"EUR": 0.92})
	if got := customers[0].SpentUSD; got < 199.99 || got > 200.01 {
		t.Errorf("SpentUSD = %v, want 200", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"normal", "Ada", "Lovelace", "Ada Lovelace"},
		{"last duplicates first", "Ada", "Ada", "Ada"},
		{"empty last", "Ada", "", "Ada"},
		{"unknown placeholder", "Unknown", "", "Customer"},
		{"all empty", "", "", "Customer"},
		{"whitespace only", "  ", " ", "Customer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayName(tc.first, tc.last); got != tc.want {
				t.Errorf("DisplayName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
			}
		})
	}
}
