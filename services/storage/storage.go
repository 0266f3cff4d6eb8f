package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"casaherenia/config"
)

// GalleryImage is one uploaded photo.
type GalleryImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// StorageService manages the photo gallery behind the site.
type StorageService interface {
	Upload(ctx context.Context, localFilePath, folder string) (*GalleryImage, error)
	Delete(ctx context.Context, publicID string) error
}

type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryStorage builds the gallery storage from configuration.
// Missing credentials disable uploads rather than failing startup.
func NewCloudinaryStorage(cfg config.Config, logger *zap.Logger) (StorageService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		logger.Info("gallery uploads disabled: cloudinary credentials not set")
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	return &cloudinaryStorage{cld: cld, logger: logger}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, localFilePath, folder string) (*GalleryImage, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("upload returned no public ID")
	}
	s.logger.Info("gallery image uploaded", zap.String("publicID", result.PublicID))
	return &GalleryImage{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete file %s: %w", publicID, err)
	}
	return nil
}
