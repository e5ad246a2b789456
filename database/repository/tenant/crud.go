// File: database/repository/tenant/crud.go
package tenantRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const tenantColumns = `id, email, password, first_name, last_name, phone, property_id,
	unit_number, lease_start, lease_end, created_at`

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(&t.ID, &t.Email, &t.Password, &t.FirstName, &t.LastName, &t.Phone,
		&t.PropertyID, &t.UnitNumber, &t.LeaseStart, &t.LeaseEnd, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresTenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	// The unique constraint on email raises 23505 for duplicate registrations.
	return r.pool.QueryRow(ctx, `
		INSERT INTO tenants
			(id, email, password, first_name, last_name, phone, property_id, unit_number, lease_start, lease_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, t.ID, t.Email, t.Password, t.FirstName, t.LastName, t.Phone, t.PropertyID,
		t.UnitNumber, t.LeaseStart, t.LeaseEnd,
	).Scan(&t.CreatedAt)
}

func (r *postgresTenantRepo) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanTenant(r.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+` FROM tenants WHERE email = $1
	`, email))
}

func (r *postgresTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanTenant(r.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+` FROM tenants WHERE id = $1
	`, id))
}

func (r *postgresTenantRepo) GetAll(ctx context.Context) ([]models.TenantDirectoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.first_name, t.last_name, t.email, t.unit_number, p.title
		FROM tenants t
		JOIN properties p ON p.id = t.property_id
		ORDER BY t.last_name ASC, t.first_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.TenantDirectoryEntry{}
	for rows.Next() {
		var e models.TenantDirectoryEntry
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.UnitNumber, &e.PropertyTitle); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
