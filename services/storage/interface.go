// File: services/storage/interface.go
package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for file storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// UploadResult carries the stored file's permanent identifiers.
type UploadResult struct {
	URL      string
	PublicID string
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
