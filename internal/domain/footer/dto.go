// internal/domain/footer/dto.go
package footer

// WriteRequest carries the operation discriminator plus the payload for
// whichever operation is named.
type WriteRequest struct {
	Operation string `json:"operation" binding:"required,oneof=update_primary add_to_array update_array_item"`

	// update_primary
	Primary *PrimaryPayload `json:"primary"`

	// add_to_array / update_array_item
	ItemID *int64       `json:"item_id"`
	Item   *ItemPayload `json:"item"`
}

type PrimaryPayload struct {
	Tagline   *string `json:"tagline"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Address   *string `json:"address"`
	Copyright *string `json:"copyright"`
}

type ItemPayload struct {
	Section   string `json:"section" binding:"required,max=50"`
	Label     string `json:"label" binding:"required,max=100"`
	URL       string `json:"url" binding:"required,max=500"`
	SortOrder int    `json:"sort_order"`
	IsVisible *bool  `json:"is_visible"`
}

type VisibilityRequest struct {
	IsVisible bool `json:"is_visible"`
}
