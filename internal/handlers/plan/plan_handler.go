// internal/handlers/plan/plan_handler.go
package plan

import (
	"errors"
	"net/http"
	"strconv"

	"farepass-service/internal/domain/plan"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/plan"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid plan payload", err)
		return
	}

	p, err := h.planService.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "plan slug already in use", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create plan", err)
		return
	}

	response.Success(c, http.StatusCreated, "plan created", p)
}

// List retrieves all plans (admin view, inactive included)
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context(), false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list plans", err)
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", plans)
}

// ListPublic retrieves active plans for the storefront
func (h *PlanHandler) ListPublic(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context(), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list plans", err)
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", plans)
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid plan ID", err)
		return
	}

	p, err := h.planService.GetPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan retrieved", p)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid plan ID", err)
		return
	}

	var req plan.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	p, err := h.planService.UpdatePlan(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan updated", p)
}

// SetActive toggles a plan's availability
func (h *PlanHandler) SetActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid plan ID", err)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.planService.SetActive(c.Request.Context(), id, req.IsActive); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to set plan state", err)
		return
	}

	response.Success(c, http.StatusOK, "plan state updated", nil)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid plan ID", err)
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete plan", err)
		return
	}

	response.Success(c, http.StatusOK, "plan deleted", nil)
}

func (h *PlanHandler) Stats(c *gin.Context) {
	stats, err := h.planService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to get plan stats", err)
		return
	}

	response.Success(c, http.StatusOK, "plan stats retrieved", stats)
}
