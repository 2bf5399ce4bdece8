// internal/service/analytics/aggregate.go
package analytics

import (
	"fmt"
	"time"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/domain/currency"
)

// Summary is the reduced view of a booking list over one period.
type Summary struct {
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// Summarize reduces bookings into USD revenue and order count. Refunded and
// cancelled payments still count as orders but their amount was already
// zeroed upstream, so no filtering happens here; this is a pure fold.
func Summarize(bookings []booking.Booking, rates currency.RateTable) Summary {
	s := Summary{OrderCount: len(bookings)}
	for _, b := range bookings {
		s.Revenue += rates.ConvertToUSD(b.Amount, b.Currency)
	}
	return s
}

// FilterByRange keeps bookings whose created_at falls inside [from, to],
// inclusive. A nil bound is open.
func FilterByRange(bookings []booking.Booking, from, to *time.Time) []booking.Booking {
	if from == nil && to == nil {
		return bookings
	}
	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if from != nil && b.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && b.CreatedAt.After(*to) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// PercentChange renders the period-over-period trend label. A zero previous
// period jumps straight to "+100%" for any growth; that discontinuity is the
// documented behavior, kept rather than smoothed.
func PercentChange(current, previous float64, lifetime bool) string {
	if lifetime {
		return "Lifetime"
	}
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	change := ((current - previous) / previous) * 100
	if change >= 0 {
		return fmt.Sprintf("+%.1f%%", change)
	}
	return fmt.Sprintf("%.1f%%", change)
}

// MonthRevenue is one month's slice of the current-year revenue series.
type MonthRevenue struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// MonthlyBreakdown buckets a year's bookings by calendar month, converting
// each amount to USD.
func MonthlyBreakdown(bookings []booking.Booking, rates currency.RateTable, year int) []MonthRevenue {
	series := make([]MonthRevenue, 12)
	for i := range series {
		series[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, b := range bookings {
		if b.CreatedAt.Year() != year {
			continue
		}
		idx := int(b.CreatedAt.Month()) - 1
		series[idx].Revenue += rates.ConvertToUSD(b.Amount, b.Currency)
		series[idx].OrderCount++
	}
	return series
}
