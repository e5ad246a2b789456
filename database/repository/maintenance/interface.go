// File: database/repository/maintenance/interface.go
package maintenanceRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaintenanceFilter narrows admin listings; empty fields match everything.
type MaintenanceFilter struct {
	TenantID   string
	PropertyID string
	Status     string
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *models.MaintenanceRequest) error
	GetAll(ctx context.Context, filter MaintenanceFilter) ([]models.MaintenanceRequest, error)
	Update(ctx context.Context, id string, upd models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error)
}

type postgresMaintenanceRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresMaintenanceRepo constructs a Postgres-backed MaintenanceRepository.
func NewPostgresMaintenanceRepo() MaintenanceRepository {
	return &postgresMaintenanceRepo{pool: database.GetPool()}
}
