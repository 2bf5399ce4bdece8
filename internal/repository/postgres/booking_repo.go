// internal/repository/postgres/booking_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farepass-service/internal/domain/booking"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	b.id, b.reference, b.user_id, b.plan_id, p.name AS plan_name, b.vendor_id,
	b.amount, b.currency, b.status, b.booking_status, b.passenger_details,
	b.route, b.travel_date, b.notes, b.created_at, b.updated_at, b.deleted_at
`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.Reference, &b.UserID, &b.PlanID, &b.PlanName, &b.VendorID,
		&b.Amount, &b.Currency, &b.Status, &b.BookingStatus, &b.PassengerDetails,
		&b.Route, &b.TravelDate, &b.Notes, &b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new booking.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (
			reference, user_id, plan_id, amount, currency, status,
			booking_status, passenger_details, route, travel_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		b.Reference, b.UserID, b.PlanID, b.Amount, b.Currency, b.Status,
		b.BookingStatus, b.PassengerDetails, b.Route, b.TravelDate, b.Notes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByID retrieves a booking with its plan name joined in.
func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		LEFT JOIN service_plans p ON p.id = b.plan_id
		WHERE b.id = $1 AND b.deleted_at IS NULL
	`, bookingColumns)

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return b, nil
}

// Update rewrites the editable booking fields.
func (r *BookingRepository) Update(ctx context.Context, id int64, b *booking.Booking) error {
	query := `
		UPDATE bookings
		SET plan_id = $1, amount = $2, currency = $3, passenger_details = $4,
		    route = $5, travel_date = $6, notes = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		b.PlanID, b.Amount, b.Currency, b.PassengerDetails,
		b.Route, b.TravelDate, b.Notes, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates the payment and/or fulfillment state.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status, bookingStatus string) error {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}
	argPos := 2

	if status != "" {
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, status)
		argPos++
	}
	if bookingStatus != "" {
		sets = append(sets, fmt.Sprintf("booking_status = $%d", argPos))
		args = append(args, bookingStatus)
		argPos++
	}

	query := fmt.Sprintf(
		"UPDATE bookings SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(sets, ", "), argPos,
	)
	args = append(args, id)

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// AssignVendor links a booking to a fulfillment vendor.
func (r *BookingRepository) AssignVendor(ctx context.Context, id, vendorID int64) error {
	query := `UPDATE bookings SET vendor_id = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, vendorID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to assign vendor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a booking.
func (r *BookingRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE bookings SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// List retrieves bookings with filters and pagination.
func (r *BookingRepository) List(ctx context.Context, filters *booking.BookingListFilters) ([]booking.Booking, int64, error) {
	conditions := []string{"b.deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}

	if filters.BookingStatus != "" {
		conditions = append(conditions, fmt.Sprintf("b.booking_status = $%d", argPos))
		args = append(args, filters.BookingStatus)
		argPos++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(b.reference ILIKE $%d OR b.user_id ILIKE $%d OR b.route ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("b.created_at >= $%d", argPos))
		args = append(args, *filters.From)
		argPos++
	}

	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("b.created_at <= $%d", argPos))
		args = append(args, *filters.To)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings b WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	sortBy := "b.created_at"
	switch filters.SortBy {
	case "amount":
		sortBy = "b.amount"
	case "travel_date":
		sortBy = "b.travel_date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		LEFT JOIN service_plans p ON p.id = b.plan_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, bookingColumns, whereClause, sortBy, sortOrder, argPos, argPos+1)

	args = append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	return bookings, total, nil
}

// ListAll retrieves every live booking; the aggregation pipeline operates on
// the full set and buckets in memory.
func (r *BookingRepository) ListAll(ctx context.Context) ([]booking.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		LEFT JOIN service_plans p ON p.id = b.plan_id
		WHERE b.deleted_at IS NULL
		ORDER BY b.created_at DESC
	`, bookingColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	return bookings, nil
}

// ExistsByReference checks if a booking reference is taken.
func (r *BookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE reference = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, reference).Scan(&exists)
	return exists, err
}
