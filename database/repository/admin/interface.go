// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

type postgresAdminRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresAdminRepo constructs a Postgres-backed AdminRepository.
func NewPostgresAdminRepo() AdminRepository {
	return &postgresAdminRepo{pool: database.GetPool()}
}
