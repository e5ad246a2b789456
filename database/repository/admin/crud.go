// File: database/repository/admin/crud.go
package adminRepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.Password, &a.Name, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanAdmin(r.pool.QueryRow(ctx, `
		SELECT id, email, password, name, created_at FROM admins WHERE email = $1
	`, email))
}

func (r *postgresAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanAdmin(r.pool.QueryRow(ctx, `
		SELECT id, email, password, name, created_at FROM admins WHERE id = $1
	`, id))
}
