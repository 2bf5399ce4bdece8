// internal/repository/postgres/vendor_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farepass-service/internal/domain/vendor"
	xerrors "farepass-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VendorRepository struct {
	db *pgxpool.Pool
}

func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create inserts a new vendor.
func (r *VendorRepository) Create(ctx context.Context, v *vendor.Vendor) error {
	query := `
		INSERT INTO vendors (name, contact_email, contact_phone, website, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		v.Name, v.ContactEmail, v.ContactPhone, v.Website, v.Notes, v.IsActive,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// FindByID retrieves a vendor by ID.
func (r *VendorRepository) FindByID(ctx context.Context, id int64) (*vendor.Vendor, error) {
	query := `
		SELECT id, name, contact_email, contact_phone, website, notes, is_active,
		       created_at, updated_at, deleted_at
		FROM vendors
		WHERE id = $1 AND deleted_at IS NULL
	`

	var v vendor.Vendor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.ContactEmail, &v.ContactPhone, &v.Website, &v.Notes,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &v, nil
}

// List retrieves all live vendors.
func (r *VendorRepository) List(ctx context.Context) ([]vendor.Vendor, error) {
	query := `
		SELECT id, name, contact_email, contact_phone, website, notes, is_active,
		       created_at, updated_at, deleted_at
		FROM vendors
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []vendor.Vendor{}
	for rows.Next() {
		var v vendor.Vendor
		err := rows.Scan(
			&v.ID, &v.Name, &v.ContactEmail, &v.ContactPhone, &v.Website, &v.Notes,
			&v.IsActive, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}

// Update rewrites the vendor fields.
func (r *VendorRepository) Update(ctx context.Context, id int64, v *vendor.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $1, contact_email = $2, contact_phone = $3, website = $4,
		    notes = $5, is_active = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		v.Name, v.ContactEmail, v.ContactPhone, v.Website, v.Notes, v.IsActive,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a vendor.
func (r *VendorRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE vendors SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
