package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService on Cloudinary. The
// reference it returns is the asset's public ID.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService builds a StorageService from Cloudinary credentials.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("cloudinary: no public ID returned")
	}
	return result.PublicID, nil
}

func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, ref string) error {
	// Destroy is a no-op for unknown public IDs, which keeps sweeps re-runnable.
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: ref}); err != nil {
		return fmt.Errorf("cloudinary: failed to delete file: %w", err)
	}
	return nil
}

func (s *CloudinaryStorageService) DownloadURL(ctx context.Context, ref string) (string, error) {
	asset, err := s.cld.Image(ref)
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to get asset: %w", err)
	}
	url, err := asset.String()
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to build URL: %w", err)
	}
	return url, nil
}
