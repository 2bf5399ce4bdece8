// internal/service/plan/service.go
package plan

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"farepass-service/internal/domain/plan"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type PlanService struct {
	planRepo *postgres.PlanRepository
	logger   *zap.Logger
}

func NewPlanService(planRepo *postgres.PlanRepository, logger *zap.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

func (s *PlanService) CreatePlan(ctx context.Context, req *plan.CreatePlanRequest) (*plan.ServicePlan, error) {
	exists, err := s.planRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: plan slug %q already in use", xerrors.ErrConflict, req.Slug)
	}

	ccy := strings.ToUpper(req.Currency)
	if ccy == "" {
		ccy = "USD"
	}

	p := &plan.ServicePlan{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   sql.NullString{String: req.Description, Valid: req.Description != ""},
		Price:         req.Price,
		Currency:      ccy,
		Features:      req.Features,
		DeliveryHours: req.DeliveryHours,
		SortOrder:     req.SortOrder,
		IsActive:      true,
	}

	if err := s.planRepo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create plan", zap.Error(err))
		return nil, err
	}

	s.logger.Info("plan created", zap.Int64("plan_id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (s *PlanService) GetPlan(ctx context.Context, id int64) (*plan.ServicePlan, error) {
	return s.planRepo.FindByID(ctx, id)
}

// ListPlans retrieves plans; the public surface passes onlyActive.
func (s *PlanService) ListPlans(ctx context.Context, onlyActive bool) ([]plan.ServicePlan, error) {
	return s.planRepo.List(ctx, onlyActive)
}

func (s *PlanService) UpdatePlan(ctx context.Context, id int64, req *plan.UpdatePlanRequest) (*plan.ServicePlan, error) {
	p, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Currency != nil {
		p.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Features != nil {
		p.Features = req.Features
	}
	if req.DeliveryHours != nil {
		p.DeliveryHours = *req.DeliveryHours
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}

	if err := s.planRepo.Update(ctx, id, p); err != nil {
		s.logger.Error("failed to update plan", zap.Error(err))
		return nil, err
	}

	s.logger.Info("plan updated", zap.Int64("plan_id", id))
	return p, nil
}

func (s *PlanService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.planRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info("plan active state set", zap.Int64("plan_id", id), zap.Bool("active", active))
	return nil
}

func (s *PlanService) DeletePlan(ctx context.Context, id int64) error {
	if err := s.planRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("plan deleted", zap.Int64("plan_id", id))
	return nil
}

func (s *PlanService) GetStats(ctx context.Context) (*plan.PlanStats, error) {
	return s.planRepo.GetStats(ctx)
}
