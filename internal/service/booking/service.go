// internal/service/booking/service.go
package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"farepass-service/internal/domain/booking"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/repository/postgres"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Notifier receives booking lifecycle events for the admin feed. Implemented
// by the notification service; kept as an interface here to avoid a cycle.
type Notifier interface {
	BookingCreated(ctx context.Context, b *booking.Booking)
}

type BookingService struct {
	bookingRepo *postgres.BookingRepository
	vendorRepo  *postgres.VendorRepository
	notifier    Notifier
	logger      *zap.Logger
}

func NewBookingService(bookingRepo *postgres.BookingRepository, vendorRepo *postgres.VendorRepository, notifier Notifier, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		vendorRepo:  vendorRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateBooking places a new order. Currency defaults to USD when absent.
func (s *BookingService) CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	ccy := strings.ToUpper(req.Currency)
	if ccy == "" {
		ccy = "USD"
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", xerrors.ErrInvalidInput)
	}

	passengersJSON, err := json.Marshal(req.Passengers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal passengers: %w", err)
	}

	reference, err := s.generateReference(ctx)
	if err != nil {
		return nil, err
	}

	b := &booking.Booking{
		Reference:        reference,
		UserID:           req.UserID,
		Amount:           req.Amount,
		Currency:         ccy,
		Status:           booking.PaymentPending,
		BookingStatus:    booking.StatusReceived,
		PassengerDetails: passengersJSON,
		Passengers:       req.Passengers,
		Route:            sql.NullString{String: req.Route, Valid: req.Route != ""},
		Notes:            sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	}
	if req.PlanID != nil {
		b.PlanID = sql.NullInt64{Int64: *req.PlanID, Valid: true}
	}
	if req.TravelDate != nil {
		b.TravelDate = sql.NullTime{Time: *req.TravelDate, Valid: true}
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		s.logger.Error("failed to create booking", zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.String("reference", b.Reference),
		zap.String("user_id", b.UserID),
	)

	if s.notifier != nil {
		s.notifier.BookingCreated(ctx, b)
	}

	return b, nil
}

// GetBooking retrieves one booking with normalized passengers.
func (s *BookingService) GetBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decodePassengers(b)
	return b, nil
}

// ListBookings retrieves bookings with filters.
func (s *BookingService) ListBookings(ctx context.Context, filters *booking.BookingListFilters) (*booking.BookingListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	bookings, total, err := s.bookingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	for i := range bookings {
		s.decodePassengers(&bookings[i])
	}

	totalPages := int(total) / filters.PageSize
	if int(total)%filters.PageSize > 0 {
		totalPages++
	}

	return &booking.BookingListResponse{
		Bookings:   bookings,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// ListAll retrieves every live booking with normalized passengers; used by
// the aggregation pipeline and CSV export.
func (s *BookingService) ListAll(ctx context.Context) ([]booking.Booking, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		s.decodePassengers(&bookings[i])
	}
	return bookings, nil
}

// UpdateBooking rewrites the editable fields.
func (s *BookingService) UpdateBooking(ctx context.Context, id int64, req *booking.UpdateBookingRequest) (*booking.Booking, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlanID != nil {
		b.PlanID = sql.NullInt64{Int64: *req.PlanID, Valid: true}
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("%w: amount must be non-negative", xerrors.ErrInvalidInput)
		}
		b.Amount = *req.Amount
	}
	if req.Currency != nil {
		b.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Passengers != nil {
		passengersJSON, err := json.Marshal(req.Passengers)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal passengers: %w", err)
		}
		b.PassengerDetails = passengersJSON
	}
	if req.Route != nil {
		b.Route = sql.NullString{String: *req.Route, Valid: *req.Route != ""}
	}
	if req.TravelDate != nil {
		b.TravelDate = sql.NullTime{Time: *req.TravelDate, Valid: true}
	}
	if req.Notes != nil {
		b.Notes = sql.NullString{String: *req.Notes, Valid: *req.Notes != ""}
	}

	if err := s.bookingRepo.Update(ctx, id, b); err != nil {
		s.logger.Error("failed to update booking", zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking updated", zap.Int64("booking_id", id))

	return s.GetBooking(ctx, id)
}

// UpdateStatus moves the payment and/or fulfillment state.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, req *booking.UpdateStatusRequest) error {
	if req.Status == "" && req.BookingStatus == "" {
		return fmt.Errorf("%w: no status provided", xerrors.ErrInvalidInput)
	}
	if req.Status != "" && !booking.ValidPaymentStatus(req.Status) {
		return fmt.Errorf("%w: unknown payment status %q", xerrors.ErrInvalidInput, req.Status)
	}
	if req.BookingStatus != "" && !booking.ValidBookingStatus(req.BookingStatus) {
		return fmt.Errorf("%w: unknown booking status %q", xerrors.ErrInvalidInput, req.BookingStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, req.Status, req.BookingStatus); err != nil {
		return err
	}

	s.logger.Info("booking status updated",
		zap.Int64("booking_id", id),
		zap.String("status", req.Status),
		zap.String("booking_status", req.BookingStatus),
	)
	return nil
}

// AssignVendor links a booking to an active vendor.
func (s *BookingService) AssignVendor(ctx context.Context, id, vendorID int64) error {
	v, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if !v.IsActive {
		return fmt.Errorf("%w: vendor %q is inactive", xerrors.ErrInvalidInput, v.Name)
	}

	if err := s.bookingRepo.AssignVendor(ctx, id, vendorID); err != nil {
		return err
	}

	s.logger.Info("vendor assigned",
		zap.Int64("booking_id", id),
		zap.Int64("vendor_id", vendorID),
	)
	return nil
}

// DeleteBooking soft deletes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookingRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.Int64("booking_id", id))
	return nil
}

// decodePassengers fills Passengers from the raw column. Malformed rows
// degrade to an empty slice here rather than failing the whole list.
func (s *BookingService) decodePassengers(b *booking.Booking) {
	passengers, err := booking.NormalizePassengers(b.PassengerDetails)
	if err != nil {
		s.logger.Warn("unparseable passenger details",
			zap.Int64("booking_id", b.ID),
			zap.Error(err),
		)
		b.Passengers = []booking.Passenger{}
		return
	}
	b.Passengers = passengers
}

// generateReference builds a unique booking reference, FP-YYYYMMDD-XXXX.
func (s *BookingService) generateReference(ctx context.Context) (string, error) {
	maxAttempts := 5
	for i := 0; i < maxAttempts; i++ {
		id := ulid.Make().String()
		reference := fmt.Sprintf("FP-%s-%s", time.Now().Format("20060102"), id[len(id)-4:])

		exists, err := s.bookingRepo.ExistsByReference(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("failed to check reference: %w", err)
		}
		if !exists {
			return reference, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique booking reference after %d attempts", maxAttempts)
}
