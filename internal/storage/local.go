package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/security"
)

const LocalURLPrefix = "/uploads"

// LocalUploader writes objects under a base directory that the HTTP server
// exposes at LocalURLPrefix.
type LocalUploader struct {
	baseDir string
	now     func() time.Time
}

func NewLocalUploader(baseDir string) *LocalUploader {
	return &LocalUploader{baseDir: baseDir, now: time.Now}
}

func (uploader *LocalUploader) BaseDir() string {
	return uploader.baseDir
}

func (uploader *LocalUploader) Upload(ctx context.Context, object Object) (Stored, error) {
	if err := validateObject(object); err != nil {
		return Stored{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stored{}, err
	}

	folder := filepath.Base(filepath.Clean("/" + object.Folder))
	if folder == "/" || folder == "." {
		folder = ""
	}
	directory := filepath.Join(uploader.baseDir, folder)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return Stored{}, fmt.Errorf("%w: create directory: %v", ErrUpload, err)
	}

	suffix, err := security.RandomAlphanumeric(8)
	if err != nil {
		return Stored{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	fileName := fmt.Sprintf("%d_%s%s", uploader.now().Unix(), suffix, safeExtension(object.Name))

	if err := os.WriteFile(filepath.Join(directory, fileName), object.Data, 0o644); err != nil {
		return Stored{}, fmt.Errorf("%w: write file: %v", ErrUpload, err)
	}

	publicID := path.Join(folder, fileName)
	return Stored{
		URL:      path.Join(LocalURLPrefix, publicID),
		PublicID: publicID,
	}, nil
}
