// internal/service/document/service.go
package document

import (
	"context"
	"fmt"
	"mime/multipart"

	"farepass-service/internal/domain/document"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/repository/postgres"
	"farepass-service/internal/service/storage"

	"go.uber.org/zap"
)

// Notifier receives document lifecycle events for the admin feed.
type Notifier interface {
	DocumentUploaded(ctx context.Context, d *document.Document)
}

type DocumentService struct {
	documentRepo *postgres.DocumentRepository
	profileRepo  *postgres.ProfileRepository
	uploader     *storage.Uploader
	notifier     Notifier
	logger       *zap.Logger
}

func NewDocumentService(documentRepo *postgres.DocumentRepository, profileRepo *postgres.ProfileRepository, uploader *storage.Uploader, notifier Notifier, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		profileRepo:  profileRepo,
		uploader:     uploader,
		notifier:     notifier,
		logger:       logger,
	}
}

// Upload stores the file and records a pending document.
func (s *DocumentService) Upload(ctx context.Context, userID, kind, fileName string, file multipart.File, bookingID *int64) (*document.Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", xerrors.ErrInvalidInput)
	}
	if kind == "" {
		kind = "other"
	}

	url, publicID, err := s.uploader.Upload(ctx, file, "documents")
	if err != nil {
		s.logger.Error("document upload failed", zap.Error(err))
		return nil, err
	}

	d := &document.Document{
		UserID:   userID,
		Kind:     kind,
		FileName: fileName,
		PublicID: publicID,
		URL:      url,
		Status:   document.StatusPending,
	}
	if bookingID != nil {
		d.BookingID.Int64 = *bookingID
		d.BookingID.Valid = true
	}

	if err := s.documentRepo.Create(ctx, d); err != nil {
		// Best effort: don't leave the stored file orphaned.
		if delErr := s.uploader.Delete(ctx, publicID); delErr != nil {
			s.logger.Warn("failed to clean up orphaned upload", zap.String("public_id", publicID), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("document uploaded",
		zap.Int64("document_id", d.ID),
		zap.String("user_id", userID),
		zap.String("kind", kind),
	)

	if s.notifier != nil {
		s.notifier.DocumentUploaded(ctx, d)
	}
	return d, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id int64) (*document.Document, error) {
	return s.documentRepo.FindByID(ctx, id)
}

func (s *DocumentService) ListDocuments(ctx context.Context, filters *document.DocumentListFilters) ([]document.Document, int64, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}
	return s.documentRepo.List(ctx, filters)
}

// Review approves or rejects a pending document. Only pending documents can
// be reviewed; a second review returns a conflict.
func (s *DocumentService) Review(ctx context.Context, id, reviewerID int64, req *document.ReviewRequest) error {
	if req.Status != document.StatusApproved && req.Status != document.StatusRejected {
		return fmt.Errorf("%w: invalid review status %q", xerrors.ErrInvalidInput, req.Status)
	}

	if err := s.documentRepo.Review(ctx, id, reviewerID, req.Status, req.Note); err != nil {
		return err
	}

	s.logger.Info("document reviewed",
		zap.Int64("document_id", id),
		zap.Int64("reviewer_id", reviewerID),
		zap.String("status", req.Status),
	)
	return nil
}

// DeleteDocument removes the record and its stored file.
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	d, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.uploader.Delete(ctx, d.PublicID); err != nil {
		s.logger.Warn("failed to delete stored file", zap.String("public_id", d.PublicID), zap.Error(err))
	}

	s.logger.Info("document deleted", zap.Int64("document_id", id))
	return nil
}

func (s *DocumentService) CountPending(ctx context.Context) (int64, error) {
	return s.documentRepo.CountPending(ctx)
}

// UploadAvatar replaces a profile's avatar image.
func (s *DocumentService) UploadAvatar(ctx context.Context, profileKey string, file multipart.File) (string, error) {
	url, _, err := s.uploader.Upload(ctx, file, "avatars")
	if err != nil {
		return "", err
	}

	if err := s.profileRepo.UpdateAvatar(ctx, profileKey, &url); err != nil {
		return "", err
	}

	s.logger.Info("avatar updated", zap.String("profile_key", profileKey))
	return url, nil
}

// RemoveAvatar clears a profile's avatar.
func (s *DocumentService) RemoveAvatar(ctx context.Context, profileKey string) error {
	if err := s.profileRepo.UpdateAvatar(ctx, profileKey, nil); err != nil {
		return err
	}
	s.logger.Info("avatar removed", zap.String("profile_key", profileKey))
	return nil
}
