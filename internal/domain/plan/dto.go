// internal/domain/plan/dto.go
package plan

type CreatePlanRequest struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Slug          string   `json:"slug" binding:"required,max=100"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"min=0"`
	Currency      string   `json:"currency" binding:"omitempty,len=3"`
	Features      []string `json:"features"`
	DeliveryHours int      `json:"delivery_hours" binding:"min=0"`
	SortOrder     int      `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=255"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	Currency      *string  `json:"currency" binding:"omitempty,len=3"`
	Features      []string `json:"features"`
	DeliveryHours *int     `json:"delivery_hours" binding:"omitempty,min=0"`
	SortOrder     *int     `json:"sort_order"`
}
