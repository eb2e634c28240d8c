package file

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores a local file remotely and returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, fileName string) (string, error)
}

type FileUploader struct {
	cloud_name string
	api_key    string
	api_secret string
	folder     string

	once sync.Once
	cld  *cloudinary.Cloudinary
	err  error
}

func New(cloud_name, api_key, api_secret, folder string) *FileUploader {
	return &FileUploader{
		cloud_name: cloud_name,
		api_key:    api_key,
		api_secret: api_secret,
		folder:     folder,
	}
}

func (f *FileUploader) client() (*cloudinary.Cloudinary, error) {
	f.once.Do(func() {
		f.cld, f.err = cloudinary.NewFromParams(f.cloud_name, f.api_key, f.api_secret)
	})
	return f.cld, f.err
}

func (f *FileUploader) UploadFile(ctx context.Context, fileName string) (string, error) {
	cld, err := f.client()
	if err != nil {
		return "", fmt.Errorf("cloudinary client: %w", err)
	}

	uploadResult, err := cld.Upload.Upload(ctx, fileName, uploader.UploadParams{Folder: f.folder})
	if err != nil {
		return "", err
	}
	if uploadResult.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", uploadResult.Error.Message)
	}

	return uploadResult.SecureURL, nil
}
