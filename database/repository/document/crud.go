// File: database/repository/document/crud.go
package documentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const documentColumns = `d.id, d.title, d.type, d.url, d.public_id, d.tenant_id, d.property_id, d.created_at,
	t.first_name, t.last_name, p.title`

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	var tenantFirst, tenantLast, propTitle *string
	err := row.Scan(&d.ID, &d.Title, &d.Type, &d.URL, &d.PublicID, &d.TenantID,
		&d.PropertyID, &d.CreatedAt, &tenantFirst, &tenantLast, &propTitle)
	if err != nil {
		return nil, err
	}
	if tenantFirst != nil && tenantLast != nil {
		d.Tenant = &models.DocumentTenant{FirstName: *tenantFirst, LastName: *tenantLast}
	}
	if propTitle != nil {
		d.Property = &models.DocumentProperty{Title: *propTitle}
	}
	return &d, nil
}

func (r *postgresDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO documents (id, title, type, url, public_id, tenant_id, property_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, doc.ID, doc.Title, doc.Type, doc.URL, doc.PublicID, doc.TenantID, doc.PropertyID,
	).Scan(&doc.CreatedAt)
}

func (r *postgresDocumentRepo) GetAll(ctx context.Context, filter DocumentFilter) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+documentColumns+`
		FROM documents d
		LEFT JOIN tenants t ON t.id = d.tenant_id
		LEFT JOIN properties p ON p.id = d.property_id
		WHERE ($1 = '' OR d.tenant_id = $1)
		  AND ($2 = '' OR d.property_id = $2)
		ORDER BY d.created_at DESC
	`, filter.TenantID, filter.PropertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

func (r *postgresDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanDocument(r.pool.QueryRow(ctx, `
		SELECT `+documentColumns+`
		FROM documents d
		LEFT JOIN tenants t ON t.id = d.tenant_id
		LEFT JOIN properties p ON p.id = d.property_id
		WHERE d.id = $1
	`, id))
}

func (r *postgresDocumentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
