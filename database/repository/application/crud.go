// File: database/repository/application/crud.go
package applicationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const applicationColumns = `a.id, a.property_id, a.first_name, a.last_name, a.email, a.phone,
	a.date_of_birth, a.desired_move_in_date, a.lease_term, a.number_of_occupants,
	a.has_pets, a.pet_details, a.employment_status, a.employer, a.job_title,
	a.monthly_income, a.current_address, a.landlord_name, a.landlord_phone,
	a.reason_for_leaving, a.reference1_name, a.reference1_phone, a.reference1_relationship,
	a.reference2_name, a.reference2_phone, a.reference2_relationship, a.additional_info,
	a.status, a.created_at, p.title, p.address, p.city, p.state`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	var prop models.PropertySummary
	err := row.Scan(
		&app.ID, &app.PropertyID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.DateOfBirth, &app.DesiredMoveInDate, &app.LeaseTerm, &app.NumberOfOccupants,
		&app.HasPets, &app.PetDetails, &app.EmploymentStatus, &app.Employer, &app.JobTitle,
		&app.MonthlyIncome, &app.CurrentAddress, &app.LandlordName, &app.LandlordPhone,
		&app.ReasonForLeaving, &app.Reference1Name, &app.Reference1Phone, &app.Reference1Relationship,
		&app.Reference2Name, &app.Reference2Phone, &app.Reference2Relationship, &app.AdditionalInfo,
		&app.Status, &app.CreatedAt, &prop.Title, &prop.Address, &prop.City, &prop.State,
	)
	if err != nil {
		return nil, err
	}
	app.Property = &prop
	return &app, nil
}

func (r *postgresApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO applications
			(id, property_id, first_name, last_name, email, phone, date_of_birth,
			 desired_move_in_date, lease_term, number_of_occupants, has_pets, pet_details,
			 employment_status, employer, job_title, monthly_income, current_address,
			 landlord_name, landlord_phone, reason_for_leaving,
			 reference1_name, reference1_phone, reference1_relationship,
			 reference2_name, reference2_phone, reference2_relationship,
			 additional_info, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING created_at
	`, app.ID, app.PropertyID, app.FirstName, app.LastName, app.Email, app.Phone,
		app.DateOfBirth, app.DesiredMoveInDate, app.LeaseTerm, app.NumberOfOccupants,
		app.HasPets, app.PetDetails, app.EmploymentStatus, app.Employer, app.JobTitle,
		app.MonthlyIncome, app.CurrentAddress, app.LandlordName, app.LandlordPhone,
		app.ReasonForLeaving, app.Reference1Name, app.Reference1Phone, app.Reference1Relationship,
		app.Reference2Name, app.Reference2Phone, app.Reference2Relationship,
		app.AdditionalInfo, app.Status,
	).Scan(&app.CreatedAt)
}

func (r *postgresApplicationRepo) GetAll(ctx context.Context) ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN properties p ON p.id = a.property_id
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *postgresApplicationRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE applications SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN properties p ON p.id = a.property_id
		WHERE a.id = $1
	`, id))
}
