// File: database/repository/property/interface.go
package propertyRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository interface {
	GetAll(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, p *models.Property, imageURLs []string) error
	Update(ctx context.Context, id string, upd models.UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id string) error
}

type postgresPropertyRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepo constructs a Postgres-backed PropertyRepository.
func NewPostgresPropertyRepo() PropertyRepository {
	return &postgresPropertyRepo{pool: database.GetPool()}
}
