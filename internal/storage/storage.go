package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

const (
	FolderReports = "medical-reports"
	FolderBills   = "bills"
)

var (
	ErrEmptyObject = errors.New("storage: empty object")
	ErrUpload      = errors.New("storage: upload failed")
)

type Object struct {
	Name        string
	ContentType string
	Folder      string
	Data        []byte
}

type Stored struct {
	URL      string
	PublicID string
}

type Uploader interface {
	Upload(ctx context.Context, object Object) (Stored, error)
}

func validateObject(object Object) error {
	if len(object.Data) == 0 {
		return ErrEmptyObject
	}
	return nil
}

func safeExtension(name string) string {
	extension := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(extension) < 2 || len(extension) > 8 {
		return ""
	}
	for _, char := range extension[1:] {
		if (char < 'a' || char > 'z') && (char < '0' || char > '9') {
			return ""
		}
	}
	return extension
}
