// File: database/repository/inquiry/crud.go
package inquiryRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const inquiryColumns = `i.id, i.property_id, i.name, i.email, i.phone, i.message,
	i.inquiry_type, i.preferred_date, i.preferred_time, i.status, i.created_at,
	p.title, p.address, p.city, p.state`

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var inq models.Inquiry
	var prop models.PropertySummary
	err := row.Scan(
		&inq.ID, &inq.PropertyID, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
		&inq.InquiryType, &inq.PreferredDate, &inq.PreferredTime, &inq.Status, &inq.CreatedAt,
		&prop.Title, &prop.Address, &prop.City, &prop.State,
	)
	if err != nil {
		return nil, err
	}
	inq.Property = &prop
	return &inq, nil
}

func (r *postgresInquiryRepo) Create(ctx context.Context, inq *models.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO inquiries
			(id, property_id, name, email, phone, message, inquiry_type, preferred_date, preferred_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, inq.ID, inq.PropertyID, inq.Name, inq.Email, inq.Phone, inq.Message,
		inq.InquiryType, inq.PreferredDate, inq.PreferredTime, inq.Status,
	).Scan(&inq.CreatedAt)
}

func (r *postgresInquiryRepo) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+inquiryColumns+`
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		ORDER BY i.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, *inq)
	}
	return inquiries, rows.Err()
}

func (r *postgresInquiryRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE inquiries SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return scanInquiry(r.pool.QueryRow(ctx, `
		SELECT `+inquiryColumns+`
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		WHERE i.id = $1
	`, id))
}
