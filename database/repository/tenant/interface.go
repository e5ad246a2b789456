// File: database/repository/tenant/interface.go
package tenantRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error
	GetByEmail(ctx context.Context, email string) (*models.Tenant, error)
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetAll(ctx context.Context) ([]models.TenantDirectoryEntry, error)
}

type postgresTenantRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresTenantRepo constructs a Postgres-backed TenantRepository.
func NewPostgresTenantRepo() TenantRepository {
	return &postgresTenantRepo{pool: database.GetPool()}
}
