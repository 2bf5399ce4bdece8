// internal/domain/customer/dto.go
package customer

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
}

type CustomerListFilters struct {
	Search    string `form:"search"` // name, email, phone
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"` // join_date, spent_usd, orders
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type CustomerListResponse struct {
	Customers  []Customer `json:"customers"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
