// File: database/repository/application/interface.go
package applicationRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Application, error)
}

type postgresApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationRepo constructs a Postgres-backed ApplicationRepository.
func NewPostgresApplicationRepo() ApplicationRepository {
	return &postgresApplicationRepo{pool: database.GetPool()}
}
