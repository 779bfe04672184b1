package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type uploadFunc func(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)

type CloudinaryUploader struct {
	upload uploadFunc
}

func NewCloudinaryUploader(cloudName string, apiKey string, apiSecret string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}
	return &CloudinaryUploader{upload: client.Upload.Upload}, nil
}

func (cloud *CloudinaryUploader) Upload(ctx context.Context, object Object) (Stored, error) {
	if err := validateObject(object); err != nil {
		return Stored{}, err
	}

	result, err := cloud.upload(ctx, bytes.NewReader(object.Data), uploader.UploadParams{
		Folder:       object.Folder,
		ResourceType: "auto",
	})
	if err != nil {
		return Stored{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if result == nil {
		return Stored{}, fmt.Errorf("%w: empty response", ErrUpload)
	}
	if result.Error.Message != "" {
		return Stored{}, fmt.Errorf("%w: %s", ErrUpload, result.Error.Message)
	}
	if result.SecureURL == "" {
		return Stored{}, fmt.Errorf("%w: response has no secure url", ErrUpload)
	}

	return Stored{URL: result.SecureURL, PublicID: result.PublicID}, nil
}
