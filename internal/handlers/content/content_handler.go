// internal/handlers/content/content_handler.go
package content

import (
	"errors"
	"net/http"
	"strconv"

	"farepass-service/internal/domain/content"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/content"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ========== FAQ sections ==========

func (h *ContentHandler) CreateSection(c *gin.Context) {
	var req content.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid section payload", err)
		return
	}

	section, err := h.contentService.CreateSection(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create section", err)
		return
	}

	response.Success(c, http.StatusCreated, "section created", section)
}

func (h *ContentHandler) ListSections(c *gin.Context) {
	sections, err := h.contentService.ListSections(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list sections", err)
		return
	}

	response.Success(c, http.StatusOK, "sections retrieved", sections)
}

func (h *ContentHandler) UpdateSection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid section ID", err)
		return
	}

	var req content.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	if err := h.contentService.UpdateSection(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "section not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update section", err)
		return
	}

	response.Success(c, http.StatusOK, "section updated", nil)
}

func (h *ContentHandler) DeleteSection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid section ID", err)
		return
	}

	if err := h.contentService.DeleteSection(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "section not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete section", err)
		return
	}

	response.Success(c, http.StatusOK, "section deleted", nil)
}

// ========== FAQ items ==========

func (h *ContentHandler) CreateItem(c *gin.Context) {
	h.saveItem(c, 0)
}

func (h *ContentHandler) UpdateItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}
	h.saveItem(c, id)
}

func (h *ContentHandler) saveItem(c *gin.Context, id int64) {
	var req content.SaveFAQItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid item payload", err)
		return
	}

	item, failed, err := h.contentService.SaveFAQItem(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to save item", err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	if len(failed) > 0 {
		response.Success(c, status, "item saved, some translations failed", gin.H{
			"item":           item,
			"failed_locales": failed,
		})
		return
	}
	response.Success(c, status, "item saved", item)
}

func (h *ContentHandler) GetItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}

	item, err := h.contentService.GetFAQItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get item", err)
		return
	}

	response.Success(c, http.StatusOK, "item retrieved", item)
}

func (h *ContentHandler) ListItems(c *gin.Context) {
	sectionID, _ := strconv.ParseInt(c.Query("section_id"), 10, 64)

	items, err := h.contentService.ListFAQItems(c.Request.Context(), sectionID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list items", err)
		return
	}

	response.Success(c, http.StatusOK, "items retrieved", items)
}

func (h *ContentHandler) DeleteItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}

	if err := h.contentService.DeleteFAQItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete item", err)
		return
	}

	response.Success(c, http.StatusOK, "item deleted", nil)
}

// SaveItemTranslations applies a translation batch to one item
func (h *ContentHandler) SaveItemTranslations(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid item ID", err)
		return
	}

	var req content.TranslationBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid translations payload", err)
		return
	}

	failed, err := h.contentService.SaveFAQTranslations(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to save translations", err)
		return
	}

	if len(failed) > 0 {
		response.Success(c, http.StatusOK, "some translations failed", gin.H{"failed_locales": failed})
		return
	}
	response.Success(c, http.StatusOK, "translations saved", nil)
}

// PublicFAQ returns published sections and items for the site
func (h *ContentHandler) PublicFAQ(c *gin.Context) {
	sections, items, err := h.contentService.PublicFAQ(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load faq", err)
		return
	}

	response.Success(c, http.StatusOK, "faq retrieved", gin.H{
		"sections": sections,
		"items":    items,
	})
}

// ========== Info pages ==========

func (h *ContentHandler) CreatePage(c *gin.Context) {
	h.savePage(c, 0)
}

func (h *ContentHandler) UpdatePage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid page ID", err)
		return
	}
	h.savePage(c, id)
}

func (h *ContentHandler) savePage(c *gin.Context, id int64) {
	var req content.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid page payload", err)
		return
	}

	page, failed, err := h.contentService.SavePage(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to save page", err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	if len(failed) > 0 {
		response.Success(c, status, "page saved, some translations failed", gin.H{
			"page":           page,
			"failed_locales": failed,
		})
		return
	}
	response.Success(c, status, "page saved", page)
}

func (h *ContentHandler) ListPages(c *gin.Context) {
	pages, err := h.contentService.ListPages(c.Request.Context(), false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list pages", err)
		return
	}

	response.Success(c, http.StatusOK, "pages retrieved", pages)
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid page ID", err)
		return
	}

	page, err := h.contentService.GetPage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get page", err)
		return
	}

	response.Success(c, http.StatusOK, "page retrieved", page)
}

// PublicPage returns one published page by slug
func (h *ContentHandler) PublicPage(c *gin.Context) {
	page, err := h.contentService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get page", err)
		return
	}

	response.Success(c, http.StatusOK, "page retrieved", page)
}

func (h *ContentHandler) DeletePage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid page ID", err)
		return
	}

	if err := h.contentService.DeletePage(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete page", err)
		return
	}

	response.Success(c, http.StatusOK, "page deleted", nil)
}

// SavePageTranslations applies a translation batch to one page
func (h *ContentHandler) SavePageTranslations(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "invalid page ID", err)
		return
	}

	var req content.TranslationBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid translations payload", err)
		return
	}

	failed, err := h.contentService.SavePageTranslations(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to save translations", err)
		return
	}

	if len(failed) > 0 {
		response.Success(c, http.StatusOK, "some translations failed", gin.H{"failed_locales": failed})
		return
	}
	response.Success(c, http.StatusOK, "translations saved", nil)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
