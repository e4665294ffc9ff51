package storage

import (
	"context"
)

// StorageService abstracts where booking attachments live. Upload returns a
// permanent reference stored on the booking record; DownloadURL resolves a
// reference to something a browser can fetch. Deleting an unknown reference
// must succeed, so orphan sweeps can re-run safely.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, ref string) error
	DownloadURL(ctx context.Context, ref string) (string, error)
}
