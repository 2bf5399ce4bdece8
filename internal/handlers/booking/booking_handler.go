// internal/handlers/booking/booking_handler.go
package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"farepass-service/internal/domain/booking"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create places a new booking (public, customer-facing)
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid booking payload", err)
		return
	}

	b, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "invalid booking", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create booking", err)
		return
	}

	response.Success(c, http.StatusCreated, "booking created", b)
}

// List retrieves bookings with filters
func (h *BookingHandler) List(c *gin.Context) {
	var filters booking.BookingListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}

	response.Success(c, http.StatusOK, "bookings retrieved", result)
}

// Get retrieves one booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid booking ID", err)
		return
	}

	b, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get booking", err)
		return
	}

	response.Success(c, http.StatusOK, "booking retrieved", b)
}

// Update rewrites the editable booking fields
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid booking ID", err)
		return
	}

	var req booking.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	b, err := h.bookingService.UpdateBooking(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "booking not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "invalid booking", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to update booking", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "booking updated", b)
}

// UpdateStatus moves payment and/or fulfillment state
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid booking ID", err)
		return
	}

	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "booking not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "invalid status", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to update status", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "status updated", nil)
}

// AssignVendor links a booking to a fulfillment vendor
func (h *BookingHandler) AssignVendor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid booking ID", err)
		return
	}

	var req booking.AssignVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.bookingService.AssignVendor(c.Request.Context(), id, req.VendorID); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "booking or vendor not found")
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "vendor cannot be assigned", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to assign vendor", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "vendor assigned", nil)
}

// Delete soft deletes a booking
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid booking ID", err)
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete booking", err)
		return
	}

	response.Success(c, http.StatusOK, "booking deleted", nil)
}

// Export streams all bookings as CSV
func (h *BookingHandler) Export(c *gin.Context) {
	data, filename, err := h.bookingService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to export bookings", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
