// File: services/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a Cloudinary-backed StorageService from credentials.
func NewStorageService(cloudName, apiKey, apiSecret string) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("storage: cloudinary credentials not set")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld}, nil
}

// UploadFile uploads a file into the specified folder and returns its
// delivery URL and permanent public ID.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*UploadResult, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       destFolder,
		PublicID:     base,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteFile deletes a file given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
