// internal/handlers/footer/footer_handler.go
package footer

import (
	"errors"
	"net/http"
	"strconv"

	"farepass-service/internal/domain/footer"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/footer"

	"github.com/gin-gonic/gin"
)

type FooterHandler struct {
	footerService *service.FooterService
}

func NewFooterHandler(footerService *service.FooterService) *FooterHandler {
	return &FooterHandler{footerService: footerService}
}

// Get returns the admin footer view, hidden entries included
func (h *FooterHandler) Get(c *gin.Context) {
	f, err := h.footerService.Get(c.Request.Context(), true)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "footer not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get footer", err)
		return
	}

	response.Success(c, http.StatusOK, "footer retrieved", f)
}

// GetPublic returns the visible footer for the site
func (h *FooterHandler) GetPublic(c *gin.Context) {
	f, err := h.footerService.Get(c.Request.Context(), false)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "footer not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get footer", err)
		return
	}

	response.Success(c, http.StatusOK, "footer retrieved", f)
}

// Write applies one footer operation
func (h *FooterHandler) Write(c *gin.Context) {
	var req footer.WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid footer payload", err)
		return
	}

	if err := h.footerService.Write(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "invalid footer operation", err)
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "footer record not found")
		default:
			response.Error(c, http.StatusInternalServerError, "failed to write footer", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "footer updated", nil)
}

// SetItemVisibility toggles one entry
func (h *FooterHandler) SetItemVisibility(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}

	var req footer.VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.footerService.SetItemVisibility(c.Request.Context(), id, req.IsVisible); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "footer item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to set visibility", err)
		return
	}

	response.Success(c, http.StatusOK, "visibility updated", nil)
}

// DeleteItem removes one entry
func (h *FooterHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}

	if err := h.footerService.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "footer item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete item", err)
		return
	}

	response.Success(c, http.StatusOK, "item deleted", nil)
}
