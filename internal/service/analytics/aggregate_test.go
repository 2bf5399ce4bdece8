package analytics

import (
	"math"
	"testing"
	"time"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/domain/currency"
)

func TestSummarizeUSDIdentity(t *testing.T) {
	// USD amounts pass through untouched regardless of the rate table.
	rates := currency.RateTable{"USD": 0.5, "EUR": 0.92}
	bookings := []booking.Booking{
		{Amount: 100, Currency: "USD"},
		{Amount: 49.99, Currency: "USD"},
	}

	s := Summarize(bookings, rates)
	if s.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", s.OrderCount)
	}
	if s.Revenue != 149.99 {
		t.Errorf("Revenue = %v, want 149.99", s.Revenue)
	}
}

func TestSummarizeConversion(t *testing.T) {
	rates := currency.RateTable{"EUR": 0.92}
	cases := []struct {
		name     string
		bookings []booking.Booking
		want     float64
	}{
		{
			name:     "eur converts at units-per-usd",
			bookings: []booking.Booking{{Amount: 92, Currency: "EUR"}},
			want:     100,
		},
		{
			name:     "missing rate falls back to 1:1",
			bookings: []booking.Booking{{Amount: 75, Currency: "GBP"}},
			want:     75,
		},
		{
			name:     "empty currency treated as USD",
			bookings: []booking.Booking{{Amount: 30}},
			want:     30,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize(tc.bookings, rates)
			if math.Abs(s.Revenue-tc.want) > 1e-9 {
				t.Errorf("Revenue = %v, want %v", s.Revenue, tc.want)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		lifetime bool
		want     string
	}{
		{"lifetime short-circuit", 1234, 5678, true, "Lifetime"},
		{"zero previous with growth", 50, 0, false, "+100%"},
		{"zero previous no growth", 0, 0, false, "0%"},
		{"positive change", 150, 100, false, "+50.0%"},
		{"negative change", 75, 100, false, "-25.0%"},
		{"flat", 100, 100, false, "+0.0%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PercentChange(tc.current, tc.previous, tc.lifetime); got != tc.want {
				t.Errorf("PercentChange(%v, %v, %v) = %q, want %q",
					tc.current, tc.previous, tc.lifetime, got, tc.want)
			}
		})
	}
}

func TestFilterByRange(t *testing.T) {
	mk := func(day int) booking.Booking {
		return booking.Booking{CreatedAt: time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC)}
	}
	bookings := []booking.Booking{mk(1), mk(10), mk(20)}

	from := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	got := FilterByRange(bookings, &from, &to)
	if len(got) != 1 || got[0].CreatedAt.Day() != 10 {
		t.Fatalf("FilterByRange kept %d bookings, want just day 10", len(got))
	}

	if got := FilterByRange(bookings, nil, nil); len(got) != 3 {
		t.Fatalf("open range kept %d bookings, want all 3", len(got))
	}
}

// End-to-end scenario: a EUR booking inside this_month counts toward current
// revenue at the converted USD amount.
func TestCurrentPeriodScenario(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	rates := currency.RateTable{"EUR": 0.92}
	bookings := []booking.Booking{
		{Amount: 100, Currency: "EUR", CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	r, err := Resolve(RangeThisMonth, nil, now)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	current := Summarize(FilterByRange(bookings, r.CurrentStart, r.CurrentEnd), rates)
	if current.OrderCount != 1 {
		t.Fatalf("OrderCount = %d, want 1", current.OrderCount)
	}
	if math.Abs(current.Revenue-108.70) > 0.01 {
		t.Errorf("Revenue = %v, want ≈108.70", current.Revenue)
	}

	previous := Summarize(FilterByRange(bookings, r.PrevStart, r.PrevEnd), rates)
	if previous.OrderCount != 0 {
		t.Errorf("previous OrderCount = %d, want 0", previous.OrderCount)
	}
	if got := PercentChange(current.Revenue, previous.Revenue, false); got != "+100%" {
		t.Errorf("PercentChange = %q, want +100%%", got)
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	rates := currency.RateTable{"EUR": 0.92}
	bookings := []booking.Booking{
		{Amount: 100, Currency: "USD", CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 92, Currency: "EUR", CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: 40, Currency: "USD", CreatedAt: time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)}, // other year
	}

	series := MonthlyBreakdown(bookings, rates, 2024)
	if len(series) != 12 {
		t.Fatalf("series has %d entries, want 12", len(series))
	}
	if series[0].Month != "Jan" {
		t.Errorf("first month label = %q, want Jan", series[0].Month)
	}
	if series[0].OrderCount != 2 {
		t.Errorf("Jan OrderCount = %d, want 2", series[0].OrderCount)
	}
	if math.Abs(series[0].Revenue-200) > 1e-9 {
		t.Errorf("Jan Revenue = %v, want 200", series[0].Revenue)
	}
	for i := 1; i < 12; i++ {
		if series[i].OrderCount != 0 {
			t.Errorf("%s OrderCount = %d, want 0", series[i].Month, series[i].OrderCount)
		}
	}
}
