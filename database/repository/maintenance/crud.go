// File: database/repository/maintenance/crud.go
package maintenanceRepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const maintenanceColumns = `m.id, m.tenant_id, m.property_id, m.category, m.priority,
	m.description, m.preferred_access_times, m.photos, m.status, m.admin_notes,
	m.created_at, m.updated_at,
	t.first_name, t.last_name, t.email, t.phone, t.unit_number,
	p.title, p.address`

func scanMaintenance(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	var tenant models.MaintenanceTenant
	var prop models.MaintenanceProperty
	var photosJSON *string
	err := row.Scan(
		&m.ID, &m.TenantID, &m.PropertyID, &m.Category, &m.Priority,
		&m.Description, &m.PreferredAccessTimes, &photosJSON, &m.Status, &m.AdminNotes,
		&m.CreatedAt, &m.UpdatedAt,
		&tenant.FirstName, &tenant.LastName, &tenant.Email, &tenant.Phone, &tenant.UnitNumber,
		&prop.Title, &prop.Address,
	)
	if err != nil {
		return nil, err
	}
	m.Photos = []string{}
	if photosJSON != nil && *photosJSON != "" {
		// Stored as a JSON array; a corrupt value degrades to no photos.
		_ = json.Unmarshal([]byte(*photosJSON), &m.Photos)
	}
	m.Tenant = &tenant
	m.Property = &prop
	return &m, nil
}

func (r *postgresMaintenanceRepo) Create(ctx context.Context, req *models.MaintenanceRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	var photosJSON *string
	if len(req.Photos) > 0 {
		raw, err := json.Marshal(req.Photos)
		if err != nil {
			return err
		}
		s := string(raw)
		photosJSON = &s
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO maintenance_requests
			(id, tenant_id, property_id, category, priority, description, preferred_access_times, photos, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, req.ID, req.TenantID, req.PropertyID, req.Category, req.Priority,
		req.Description, req.PreferredAccessTimes, photosJSON, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *postgresMaintenanceRepo) GetAll(ctx context.Context, filter MaintenanceFilter) ([]models.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+maintenanceColumns+`
		FROM maintenance_requests m
		JOIN tenants t ON t.id = m.tenant_id
		JOIN properties p ON p.id = m.property_id
		WHERE ($1 = '' OR m.tenant_id = $1)
		  AND ($2 = '' OR m.property_id = $2)
		  AND ($3 = '' OR m.status = $3)
		ORDER BY m.created_at DESC
	`, filter.TenantID, filter.PropertyID, filter.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []models.MaintenanceRequest{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *m)
	}
	return reqs, rows.Err()
}

func (r *postgresMaintenanceRepo) Update(ctx context.Context, id string, upd models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE maintenance_requests SET
			status      = COALESCE($2, status),
			admin_notes = COALESCE($3, admin_notes),
			updated_at  = now()
		WHERE id = $1
	`, id, upd.Status, upd.AdminNotes)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return scanMaintenance(r.pool.QueryRow(ctx, `
		SELECT `+maintenanceColumns+`
		FROM maintenance_requests m
		JOIN tenants t ON t.id = m.tenant_id
		JOIN properties p ON p.id = m.property_id
		WHERE m.id = $1
	`, id))
}
