// File: database/repository/document/interface.go
package documentRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentFilter narrows listings; empty fields match everything.
type DocumentFilter struct {
	TenantID   string
	PropertyID string
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetAll(ctx context.Context, filter DocumentFilter) ([]models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}

type postgresDocumentRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresDocumentRepo constructs a Postgres-backed DocumentRepository.
func NewPostgresDocumentRepo() DocumentRepository {
	return &postgresDocumentRepo{pool: database.GetPool()}
}
