// File: services/showing/availability.go
package showing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	availabilityRepo "rentaldesk/database/repository/availability"
	"rentaldesk/models"
)

// AvailabilityService manages the recurring weekly showing windows.
type AvailabilityService interface {
	ListForProperty(ctx context.Context, propertyID string) ([]models.AvailabilityRule, error)
	Create(ctx context.Context, propertyID string, req models.CreateAvailabilityRequest) (*models.AvailabilityRule, error)
	Update(ctx context.Context, id string, req models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error)
	Delete(ctx context.Context, id string) error
}

type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
}

func validClock(s string) bool {
	_, ok := minutesOfDay(s)
	return ok
}

func (s *DefaultAvailabilityService) ListForProperty(ctx context.Context, propertyID string) ([]models.AvailabilityRule, error) {
	return s.Repo.GetByProperty(ctx, propertyID)
}

func (s *DefaultAvailabilityService) Create(ctx context.Context, propertyID string, req models.CreateAvailabilityRequest) (*models.AvailabilityRule, error) {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", ErrInvalidInput)
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) {
		return nil, fmt.Errorf("%w: times must be HH:MM", ErrInvalidInput)
	}
	start, _ := minutesOfDay(req.StartTime)
	end, _ := minutesOfDay(req.EndTime)
	if start >= end {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	duration := req.SlotDuration
	if duration <= 0 {
		duration = 30
	}

	rule := &models.AvailabilityRule{
		PropertyID:   propertyID,
		DayOfWeek:    *req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: duration,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, rule); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return nil, ErrPropertyGone
		}
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return rule, nil
}

func (s *DefaultAvailabilityService) Update(ctx context.Context, id string, req models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error) {
	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", ErrInvalidInput)
	}
	if req.StartTime != nil && !validClock(*req.StartTime) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	if req.EndTime != nil && !validClock(*req.EndTime) {
		return nil, fmt.Errorf("%w: endTime must be HH:MM", ErrInvalidInput)
	}

	rule, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rule, nil
}

func (s *DefaultAvailabilityService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
