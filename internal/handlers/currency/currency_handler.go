// internal/handlers/currency/currency_handler.go
package currency

import (
	"net/http"

	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/currency"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService *service.CurrencyService
}

func NewCurrencyHandler(currencyService *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// List returns the stored USD-base exchange rates
func (h *CurrencyHandler) List(c *gin.Context) {
	rates, err := h.currencyService.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list rates", err)
		return
	}

	response.Success(c, http.StatusOK, "rates retrieved", rates)
}

// Refresh pulls a fresh table from the provider
func (h *CurrencyHandler) Refresh(c *gin.Context) {
	if err := h.currencyService.Refresh(c.Request.Context()); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to refresh rates", err)
		return
	}

	response.Success(c, http.StatusOK, "rates refreshed", nil)
}
