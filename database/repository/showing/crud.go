// File: database/repository/showing/crud.go
package showingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const showingColumns = `s.id, s.property_id, s.name, s.email, s.phone, s.scheduled_date,
	s.scheduled_time, s.duration, s.status, s.notes, s.created_at, s.updated_at,
	p.title, p.address, p.city, p.state`

func scanShowing(row pgx.Row) (*models.Showing, error) {
	var s models.Showing
	var prop models.PropertySummary
	err := row.Scan(
		&s.ID, &s.PropertyID, &s.Name, &s.Email, &s.Phone, &s.ScheduledDate,
		&s.ScheduledTime, &s.Duration, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&prop.Title, &prop.Address, &prop.City, &prop.State,
	)
	if err != nil {
		return nil, err
	}
	s.Property = &prop
	return &s, nil
}

func (r *postgresShowingRepo) Create(ctx context.Context, s *models.Showing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	// The partial unique index on live slots raises 23505 here when two visitors
	// race for the same slot; the service maps that to a conflict response.
	return r.pool.QueryRow(ctx, `
		INSERT INTO showings
			(id, property_id, name, email, phone, scheduled_date, scheduled_time, duration, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, s.ID, s.PropertyID, s.Name, s.Email, s.Phone, s.ScheduledDate, s.ScheduledTime,
		s.Duration, s.Status, s.Notes,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresShowingRepo) GetAll(ctx context.Context, status, propertyID string) ([]models.Showing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+showingColumns+`
		FROM showings s
		JOIN properties p ON p.id = s.property_id
		WHERE ($1 = '' OR s.status = $1)
		  AND ($2 = '' OR s.property_id = $2)
		ORDER BY s.scheduled_date ASC, s.scheduled_time ASC
	`, status, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showings := []models.Showing{}
	for rows.Next() {
		s, err := scanShowing(rows)
		if err != nil {
			return nil, err
		}
		showings = append(showings, *s)
	}
	return showings, rows.Err()
}

func (r *postgresShowingRepo) GetByID(ctx context.Context, id string) (*models.Showing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanShowing(r.pool.QueryRow(ctx, `
		SELECT `+showingColumns+`
		FROM showings s
		JOIN properties p ON p.id = s.property_id
		WHERE s.id = $1
	`, id))
}

func (r *postgresShowingRepo) UpdateStatus(ctx context.Context, id, status string, notes *string) (*models.Showing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE showings
		SET status = $2,
			notes = COALESCE($3, notes),
			updated_at = now()
		WHERE id = $1
	`, id, status, notes)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *postgresShowingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM showings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postgresShowingRepo) BookedTimes(ctx context.Context, propertyID string, date time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT scheduled_time
		FROM showings
		WHERE property_id = $1
		  AND scheduled_date = $2
		  AND status IN ('PENDING', 'CONFIRMED')
	`, propertyID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (r *postgresShowingRepo) CompletePastConfirmed(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE showings
		SET status = 'COMPLETED', updated_at = now()
		WHERE status = 'CONFIRMED' AND scheduled_date < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
