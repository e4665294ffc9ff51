package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorageService implements StorageService on a directory served by the
// HTTP layer under /uploads. The reference it returns is the stored filename.
type LocalStorageService struct {
	dir string
}

// NewLocalStorageService ensures the upload directory exists and returns a
// disk-backed StorageService.
func NewLocalStorageService(dir string) (StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorageService{dir: dir}, nil
}

func (s *LocalStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	src, err := os.Open(localFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	// Timestamp prefix keeps same-named uploads distinct.
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(localFilePath))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return name, nil
}

func (s *LocalStorageService) DeleteFile(ctx context.Context, ref string) error {
	// Refuse anything that escapes the upload dir.
	if ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return fmt.Errorf("invalid attachment reference %q", ref)
	}
	if err := os.Remove(filepath.Join(s.dir, ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) DownloadURL(ctx context.Context, ref string) (string, error) {
	return "/uploads/" + ref, nil
}
