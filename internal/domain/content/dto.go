// internal/domain/content/dto.go
package content

type CreateSectionRequest struct {
	Slug      string `json:"slug" binding:"required,max=100"`
	Title     string `json:"title" binding:"required,max=255"`
	SortOrder int    `json:"sort_order"`
}

type UpdateSectionRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	SortOrder *int    `json:"sort_order"`
}

type SaveFAQItemRequest struct {
	SectionID    int64                      `json:"section_id" binding:"required"`
	Question     string                     `json:"question" binding:"required"`
	Answer       string                     `json:"answer" binding:"required"`
	SortOrder    int                        `json:"sort_order"`
	IsPublished  bool                       `json:"is_published"`
	Translations map[string]TranslationBody `json:"translations"`
}

type SavePageRequest struct {
	Slug         string                     `json:"slug" binding:"required,max=100"`
	Title        string                     `json:"title" binding:"required,max=255"`
	Content      string                     `json:"content" binding:"required"`
	Steps        []string                   `json:"steps"`
	IsPublished  bool                       `json:"is_published"`
	Translations map[string]TranslationBody `json:"translations"`
}

type TranslationBatchRequest struct {
	Translations map[string]TranslationBody `json:"translations" binding:"required"`
}
