// internal/repository/postgres/plan_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/plan"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `
	id, name, slug, description, price, currency, features, delivery_hours,
	sort_order, is_active, created_at, updated_at, deleted_at
`

func scanPlan(row pgx.Row) (*plan.ServicePlan, error) {
	var p plan.ServicePlan
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Currency,
		&p.Features, &p.DeliveryHours, &p.SortOrder, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new service plan.
func (r *PlanRepository) Create(ctx context.Context, p *plan.ServicePlan) error {
	query := `
		INSERT INTO service_plans (
			name, slug, description, price, currency, features,
			delivery_hours, sort_order, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Name, p.Slug, p.Description, p.Price, p.Currency, p.Features,
		p.DeliveryHours, p.SortOrder, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// FindByID retrieves a plan by ID.
func (r *PlanRepository) FindByID(ctx context.Context, id int64) (*plan.ServicePlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_plans WHERE id = $1 AND deleted_at IS NULL`, planColumns)

	p, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}
	return p, nil
}

// List retrieves plans, optionally only active ones (the public catalog).
func (r *PlanRepository) List(ctx context.Context, onlyActive bool) ([]plan.ServicePlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_plans WHERE deleted_at IS NULL`, planColumns)
	if onlyActive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []plan.ServicePlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, *p)
	}

	return plans, nil
}

// Update rewrites the plan fields.
func (r *PlanRepository) Update(ctx context.Context, id int64, p *plan.ServicePlan) error {
	query := `
		UPDATE service_plans
		SET name = $1, description = $2, price = $3, currency = $4, features = $5,
		    delivery_hours = $6, sort_order = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		p.Name, p.Description, p.Price, p.Currency, p.Features,
		p.DeliveryHours, p.SortOrder, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetActive toggles the plan's visibility in the public catalog.
func (r *PlanRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE service_plans SET is_active = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set plan active: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a plan.
func (r *PlanRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE service_plans SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ExistsBySlug checks whether a plan slug is taken.
func (r *PlanRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM service_plans WHERE slug = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.db.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}

// GetStats retrieves plan counts.
func (r *PlanRepository) GetStats(ctx context.Context) (*plan.PlanStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN is_active = TRUE THEN 1 END) AS active
		FROM service_plans
		WHERE deleted_at IS NULL
	`

	var stats plan.PlanStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.TotalPlans, &stats.ActivePlans); err != nil {
		return nil, fmt.Errorf("failed to get plan stats: %w", err)
	}
	return &stats, nil
}
