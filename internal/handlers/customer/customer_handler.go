// internal/handlers/customer/customer_handler.go
package customer

import (
	"errors"
	"fmt"
	"net/http"

	"farepass-service/internal/domain/customer"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List retrieves the merged customer rollup
func (h *CustomerHandler) List(c *gin.Context) {
	var filters customer.CustomerListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list customers", err)
		return
	}

	response.Success(c, http.StatusOK, "customers retrieved", result)
}

// Get retrieves one raw profile by identity key
func (h *CustomerHandler) Get(c *gin.Context) {
	key := c.Param("key")

	profile, err := h.customerService.GetProfile(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer retrieved", profile)
}

// Update rewrites the editable profile fields
func (h *CustomerHandler) Update(c *gin.Context) {
	key := c.Param("key")

	var req customer.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	profile, err := h.customerService.UpdateProfile(c.Request.Context(), key, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer updated", profile)
}

// Delete removes a profile
func (h *CustomerHandler) Delete(c *gin.Context) {
	key := c.Param("key")

	if err := h.customerService.DeleteProfile(c.Request.Context(), key); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer deleted", nil)
}

// Export streams the customer rollup as CSV
func (h *CustomerHandler) Export(c *gin.Context) {
	data, filename, err := h.customerService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to export customers", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
