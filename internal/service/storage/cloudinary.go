// internal/service/storage/cloudinary.go
package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploader stores passenger documents and avatars on Cloudinary.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

func NewUploader(cloudName, apiKey, apiSecret, folder string, logger *zap.Logger) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Uploader{cld: cld, folder: folder, logger: logger}, nil
}

// Upload stores one file and returns its secure URL and public ID. The
// public ID is random so uploads never collide on filename.
func (u *Uploader) Upload(ctx context.Context, file multipart.File, subfolder string) (string, string, error) {
	unique := true
	overwrite := false

	publicID := uuid.NewString()
	params := uploader.UploadParams{
		Folder:         fmt.Sprintf("%s/%s", u.folder, subfolder),
		PublicID:       publicID,
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	result, err := u.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", "", fmt.Errorf("upload succeeded but no URL returned")
	}

	u.logger.Info("file uploaded",
		zap.String("public_id", result.PublicID),
		zap.String("folder", params.Folder),
	)
	return result.SecureURL, result.PublicID, nil
}

// Delete removes one stored file by public ID.
func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	u.logger.Info("file deleted", zap.String("public_id", publicID))
	return nil
}
