package footer

import (
	"database/sql"
	"errors"
	"testing"

	"farepass-service/internal/domain/footer"
	xerrors "farepass-service/internal/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestValidateWrite(t *testing.T) {
	itemID := int64(7)
	item := &footer.ItemPayload{Section: "links", Label: "Home", URL: "/"}

	tests := []struct {
		name    string
		req     footer.WriteRequest
		wantErr bool
	}{
		{"update_primary with payload", footer.WriteRequest{Operation: footer.OpUpdatePrimary, Primary: &footer.PrimaryPayload{}}, false},
		{"update_primary missing payload", footer.WriteRequest{Operation: footer.OpUpdatePrimary}, true},
		{"add_to_array with item", footer.WriteRequest{Operation: footer.OpAddToArray, Item: item}, false},
		{"add_to_array missing item", footer.WriteRequest{Operation: footer.OpAddToArray}, true},
		{"update_array_item complete", footer.WriteRequest{Operation: footer.OpUpdateArrayItem, ItemID: &itemID, Item: item}, false},
		{"update_array_item missing id", footer.WriteRequest{Operation: footer.OpUpdateArrayItem, Item: item}, true},
		{"update_array_item missing item", footer.WriteRequest{Operation: footer.OpUpdateArrayItem, ItemID: &itemID}, true},
		{"unknown operation", footer.WriteRequest{Operation: "delete_everything"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWrite(&tt.req)
			if tt.wantErr {
				if !errors.Is(err, xerrors.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyPrimaryPayload(t *testing.T) {
	p := footer.Primary{
		Tagline: sql.NullString{String: "Fly with proof", Valid: true},
		Email:   sql.NullString{String: "old@farepass.test", Valid: true},
		Phone:   sql.NullString{String: "+1000", Valid: true},
	}

	ApplyPrimaryPayload(&p, &footer.PrimaryPayload{
		Email: strPtr("support@farepass.test"),
		Phone: strPtr(""), // explicit clear
	})

	if p.Tagline.String != "Fly with proof" {
		t.Errorf("absent field should be untouched, got %q", p.Tagline.String)
	}
	if p.Email.String != "support@farepass.test" {
		t.Errorf("expected email replaced, got %q", p.Email.String)
	}
	if p.Phone.Valid {
		t.Errorf("expected phone cleared, got %q", p.Phone.String)
	}
}

func TestBuildItemVisibilityDefault(t *testing.T) {
	it := BuildItem(&footer.ItemPayload{Section: "socials", Label: "X", URL: "https://x.test"})
	if !it.IsVisible {
		t.Error("expected visibility to default to true")
	}

	hidden := false
	it = BuildItem(&footer.ItemPayload{Section: "socials", Label: "X", URL: "https://x.test", IsVisible: &hidden})
	if it.IsVisible {
		t.Error("expected explicit visibility to be honored")
	}
}
