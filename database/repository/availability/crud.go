// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const ruleColumns = `id, property_id, day_of_week, start_time, end_time, slot_duration, is_active, created_at`

func scanRule(row pgx.Row) (*models.AvailabilityRule, error) {
	var a models.AvailabilityRule
	err := row.Scan(&a.ID, &a.PropertyID, &a.DayOfWeek, &a.StartTime, &a.EndTime,
		&a.SlotDuration, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresAvailabilityRepo) collect(rows pgx.Rows) ([]models.AvailabilityRule, error) {
	defer rows.Close()
	rules := []models.AvailabilityRule{}
	for rows.Next() {
		a, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *a)
	}
	return rules, rows.Err()
}

func (r *postgresAvailabilityRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM showing_availability
		WHERE property_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`, propertyID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresAvailabilityRepo) GetActiveForDay(ctx context.Context, propertyID string, dayOfWeek int) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM showing_availability
		WHERE property_id = $1 AND day_of_week = $2 AND is_active
		ORDER BY start_time ASC
	`, propertyID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresAvailabilityRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO showing_availability
			(id, property_id, day_of_week, start_time, end_time, slot_duration, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, rule.ID, rule.PropertyID, rule.DayOfWeek, rule.StartTime, rule.EndTime,
		rule.SlotDuration, rule.IsActive,
	).Scan(&rule.CreatedAt)
}

func (r *postgresAvailabilityRepo) Update(ctx context.Context, id string, upd models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanRule(r.pool.QueryRow(ctx, `
		UPDATE showing_availability SET
			day_of_week   = COALESCE($2, day_of_week),
			start_time    = COALESCE($3, start_time),
			end_time      = COALESCE($4, end_time),
			slot_duration = COALESCE($5, slot_duration),
			is_active     = COALESCE($6, is_active)
		WHERE id = $1
		RETURNING `+ruleColumns+`
	`, id, upd.DayOfWeek, upd.StartTime, upd.EndTime, upd.SlotDuration, upd.IsActive))
}

func (r *postgresAvailabilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM showing_availability WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
