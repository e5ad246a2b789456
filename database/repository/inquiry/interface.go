// File: database/repository/inquiry/interface.go
package inquiryRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository interface {
	Create(ctx context.Context, inq *models.Inquiry) error
	GetAll(ctx context.Context) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error)
}

type postgresInquiryRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresInquiryRepo constructs a Postgres-backed InquiryRepository.
func NewPostgresInquiryRepo() InquiryRepository {
	return &postgresInquiryRepo{pool: database.GetPool()}
}
