// File: services/document/document.go
package document

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	documentRepo "rentaldesk/database/repository/document"
	"rentaldesk/models"
	"rentaldesk/services/storage"
	"rentaldesk/utils"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidInput = errors.New("invalid input")
)

// UploadDocumentRequest carries the multipart form fields alongside the file stream.
type UploadDocumentRequest struct {
	Title      string
	Type       string
	TenantID   string
	PropertyID string
	Filename   string
	File       io.Reader
}

type DocumentService interface {
	Upload(ctx context.Context, req UploadDocumentRequest) (*models.Document, error)
	List(ctx context.Context, tenantID, propertyID string) ([]models.Document, error)
	ListForTenant(ctx context.Context, tenantID string) ([]models.Document, error)
	Delete(ctx context.Context, id string) error
}

type DefaultDocumentService struct {
	Repo    documentRepo.DocumentRepository
	Storage storage.StorageService
}

func (s *DefaultDocumentService) Upload(ctx context.Context, req UploadDocumentRequest) (*models.Document, error) {
	if req.Title == "" || req.File == nil {
		return nil, fmt.Errorf("%w: title and file are required", ErrInvalidInput)
	}
	if !models.ValidDocumentType(req.Type) {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, req.Type)
	}

	uploaded, err := s.Storage.UploadFile(ctx, req.File, req.Filename, "documents")
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.Document{
		Title:    req.Title,
		Type:     req.Type,
		URL:      uploaded.URL,
		PublicID: uploaded.PublicID,
	}
	if req.TenantID != "" {
		doc.TenantID = &req.TenantID
	}
	if req.PropertyID != "" {
		doc.PropertyID = &req.PropertyID
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		// Best-effort cleanup of the orphaned upload.
		if delErr := s.Storage.DeleteFile(ctx, uploaded.PublicID); delErr != nil {
			utils.GetLogger().Warn("failed to clean up orphaned upload",
				zap.String("publicId", uploaded.PublicID), zap.Error(delErr))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: unknown tenantId or propertyId", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (s *DefaultDocumentService) List(ctx context.Context, tenantID, propertyID string) ([]models.Document, error) {
	return s.Repo.GetAll(ctx, documentRepo.DocumentFilter{TenantID: tenantID, PropertyID: propertyID})
}

func (s *DefaultDocumentService) ListForTenant(ctx context.Context, tenantID string) ([]models.Document, error) {
	return s.Repo.GetAll(ctx, documentRepo.DocumentFilter{TenantID: tenantID})
}

func (s *DefaultDocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if doc.PublicID != "" {
		if err := s.Storage.DeleteFile(ctx, doc.PublicID); err != nil {
			utils.GetLogger().Warn("failed to delete stored file",
				zap.String("publicId", doc.PublicID), zap.Error(err))
		}
	}
	return s.Repo.Delete(ctx, id)
}
