// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"
	"time"

	"farepass-service/internal/pkg/response"
	"farepass-service/internal/service/analytics"
	service "farepass-service/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the dashboard payload for the requested period.
// Query params: range (defaults to all_time), from/to (YYYY-MM-DD, only with
// range=all_time).
func (h *DashboardHandler) GetStats(c *gin.Context) {
	key, err := analytics.ParseRangeKey(c.DefaultQuery("range", string(analytics.RangeAllTime)))
	if err != nil {
		response.ValidationError(c, "unknown range", err)
		return
	}

	var custom *analytics.CustomRange
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		custom = &analytics.CustomRange{}
		if fromStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				response.ValidationError(c, "invalid from date", err)
				return
			}
			custom.From = &from
		}
		if toStr != "" {
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				response.ValidationError(c, "invalid to date", err)
				return
			}
			custom.To = &to
		}
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), key, custom)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard retrieved", stats)
}
