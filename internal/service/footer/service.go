// internal/service/footer/service.go
package footer

import (
	"context"
	"database/sql"
	"fmt"

	"farepass-service/internal/domain/footer"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type FooterService struct {
	footerRepo *postgres.FooterRepository
	logger     *zap.Logger
}

func NewFooterService(footerRepo *postgres.FooterRepository, logger *zap.Logger) *FooterService {
	return &FooterService{footerRepo: footerRepo, logger: logger}
}

// Get assembles the footer payload: the primary record plus array entries
// grouped by section. Admin view includes hidden entries.
func (s *FooterService) Get(ctx context.Context, includeHidden bool) (*footer.Footer, error) {
	primary, err := s.footerRepo.GetPrimary(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.footerRepo.ListItems(ctx, !includeHidden)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]footer.Item{}
	for _, it := range items {
		grouped[it.Section] = append(grouped[it.Section], it)
	}

	return &footer.Footer{Primary: *primary, Items: grouped}, nil
}

// Write dispatches on the operation discriminator.
func (s *FooterService) Write(ctx context.Context, req *footer.WriteRequest) error {
	if err := ValidateWrite(req); err != nil {
		return err
	}

	switch req.Operation {
	case footer.OpUpdatePrimary:
		return s.updatePrimary(ctx, req.Primary)
	case footer.OpAddToArray:
		return s.addItem(ctx, req.Item)
	case footer.OpUpdateArrayItem:
		return s.updateItem(ctx, *req.ItemID, req.Item)
	default:
		return fmt.Errorf("%w: unknown footer operation %q", xerrors.ErrInvalidInput, req.Operation)
	}
}

func (s *FooterService) updatePrimary(ctx context.Context, payload *footer.PrimaryPayload) error {
	primary, err := s.footerRepo.GetPrimary(ctx)
	if err != nil {
		return err
	}

	ApplyPrimaryPayload(primary, payload)

	if err := s.footerRepo.UpdatePrimary(ctx, primary); err != nil {
		return err
	}
	s.logger.Info("footer primary updated", zap.Int64("footer_id", primary.ID))
	return nil
}

func (s *FooterService) addItem(ctx context.Context, payload *footer.ItemPayload) error {
	item := BuildItem(payload)
	if err := s.footerRepo.InsertItem(ctx, item); err != nil {
		return err
	}
	s.logger.Info("footer item added",
		zap.Int64("item_id", item.ID),
		zap.String("section", item.Section),
	)
	return nil
}

func (s *FooterService) updateItem(ctx context.Context, id int64, payload *footer.ItemPayload) error {
	item := BuildItem(payload)
	if err := s.footerRepo.UpdateItem(ctx, id, item); err != nil {
		return err
	}
	s.logger.Info("footer item updated", zap.Int64("item_id", id))
	return nil
}

// SetItemVisibility toggles one entry without touching its other fields.
func (s *FooterService) SetItemVisibility(ctx context.Context, id int64, visible bool) error {
	if err := s.footerRepo.SetItemVisibility(ctx, id, visible); err != nil {
		return err
	}
	s.logger.Info("footer item visibility set",
		zap.Int64("item_id", id),
		zap.Bool("visible", visible),
	)
	return nil
}

// DeleteItem removes one entry.
func (s *FooterService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.footerRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.logger.Info("footer item deleted", zap.Int64("item_id", id))
	return nil
}

// ValidateWrite checks that the payload named by the discriminator is present.
func ValidateWrite(req *footer.WriteRequest) error {
	switch req.Operation {
	case footer.OpUpdatePrimary:
		if req.Primary == nil {
			return fmt.Errorf("%w: update_primary requires a primary payload", xerrors.ErrInvalidInput)
		}
	case footer.OpAddToArray:
		if req.Item == nil {
			return fmt.Errorf("%w: add_to_array requires an item payload", xerrors.ErrInvalidInput)
		}
	case footer.OpUpdateArrayItem:
		if req.ItemID == nil {
			return fmt.Errorf("%w: update_array_item requires item_id", xerrors.ErrInvalidInput)
		}
		if req.Item == nil {
			return fmt.Errorf("%w: update_array_item requires an item payload", xerrors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown footer operation %q", xerrors.ErrInvalidInput, req.Operation)
	}
	return nil
}

// ApplyPrimaryPayload merges the provided fields into the primary record.
// Absent fields keep their value; an explicit empty string clears the column.
func ApplyPrimaryPayload(p *footer.Primary, payload *footer.PrimaryPayload) {
	apply := func(dst *sql.NullString, v *string) {
		if v != nil {
			*dst = sql.NullString{String: *v, Valid: *v != ""}
		}
	}
	apply(&p.Tagline, payload.Tagline)
	apply(&p.Email, payload.Email)
	apply(&p.Phone, payload.Phone)
	apply(&p.Address, payload.Address)
	apply(&p.Copyright, payload.Copyright)
}

// BuildItem converts an item payload to an entry; visibility defaults to true.
func BuildItem(payload *footer.ItemPayload) *footer.Item {
	visible := true
	if payload.IsVisible != nil {
		visible = *payload.IsVisible
	}
	return &footer.Item{
		Section:   payload.Section,
		Label:     payload.Label,
		URL:       payload.URL,
		SortOrder: payload.SortOrder,
		IsVisible: visible,
	}
}
