// internal/handlers/document/document_handler.go
package document

import (
	"errors"
	"net/http"
	"strconv"

	"farepass-service/internal/domain/document"
	"farepass-service/internal/middleware"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/response"
	service "farepass-service/internal/service/document"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10MB

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload accepts a multipart document and queues it for review
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "file is required", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.ValidationError(c, "file exceeds 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read file", err)
		return
	}
	defer file.Close()

	userID := c.PostForm("user_id")
	kind := c.PostForm("kind")

	var bookingID *int64
	if v := c.PostForm("booking_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.ValidationError(c, "invalid booking_id", err)
			return
		}
		bookingID = &id
	}

	d, err := h.documentService.Upload(c.Request.Context(), userID, kind, fileHeader.Filename, file, bookingID)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "invalid upload", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to upload document", err)
		return
	}

	response.Success(c, http.StatusCreated, "document uploaded", d)
}

// List retrieves documents with filters
func (h *DocumentHandler) List(c *gin.Context) {
	var filters document.DocumentListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters", err)
		return
	}

	documents, total, err := h.documentService.ListDocuments(c.Request.Context(), &filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list documents", err)
		return
	}

	response.Success(c, http.StatusOK, "documents retrieved", gin.H{
		"documents": documents,
		"total":     total,
	})
}

// Review approves or rejects a pending document
func (h *DocumentHandler) Review(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid document ID", err)
		return
	}

	var req document.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid review payload", err)
		return
	}

	reviewerID := middleware.MustGetAdminID(c)

	if err := h.documentService.Review(c.Request.Context(), id, reviewerID, &req); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "document not found")
		case errors.Is(err, xerrors.ErrConflict):
			response.Error(c, http.StatusConflict, "document already reviewed", err)
		case errors.Is(err, xerrors.ErrInvalidInput):
			response.ValidationError(c, "invalid review", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to review document", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "document reviewed", nil)
}

// Delete removes a document and its stored file
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid document ID", err)
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "document not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete document", err)
		return
	}

	response.Success(c, http.StatusOK, "document deleted", nil)
}

// UploadAvatar replaces a profile's avatar image
func (h *DocumentHandler) UploadAvatar(c *gin.Context) {
	key := c.Param("key")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "file is required", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.ValidationError(c, "file exceeds 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read file", err)
		return
	}
	defer file.Close()

	url, err := h.documentService.UploadAvatar(c.Request.Context(), key, file)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to upload avatar", err)
		return
	}

	response.Success(c, http.StatusOK, "avatar updated", gin.H{"avatar_url": url})
}

// RemoveAvatar clears a profile's avatar
func (h *DocumentHandler) RemoveAvatar(c *gin.Context) {
	key := c.Param("key")

	if err := h.documentService.RemoveAvatar(c.Request.Context(), key); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to remove avatar", err)
		return
	}

	response.Success(c, http.StatusOK, "avatar removed", nil)
}
