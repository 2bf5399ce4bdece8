// internal/service/booking/export.go
package booking

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"farepass-service/internal/domain/booking"
)

// ExportCSV renders every live booking as a CSV document and returns the
// bytes together with a dated filename.
func (s *BookingService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	bookings, err := s.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load bookings for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Reference", "User ID", "Plan", "Amount", "Currency", "Payment Status", "Booking Status", "Passengers", "Route", "Travel Date", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range bookings {
		b := &bookings[i]
		if err := w.Write(csvRow(b)); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func csvRow(b *booking.Booking) []string {
	plan := ""
	if b.PlanName.Valid {
		plan = b.PlanName.String
	}
	route := ""
	if b.Route.Valid {
		route = b.Route.String
	}
	travelDate := ""
	if b.TravelDate.Valid {
		travelDate = b.TravelDate.Time.Format("2006-01-02")
	}

	names := make([]string, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		if name != "" {
			names = append(names, name)
		}
	}

	return []string{
		b.Reference,
		b.UserID,
		plan,
		strconv.FormatFloat(b.Amount, 'f', 2, 64),
		b.Currency,
		b.Status,
		b.BookingStatus,
		strings.Join(names, "; "),
		route,
		travelDate,
		b.CreatedAt.Format(time.RFC3339),
	}
}
