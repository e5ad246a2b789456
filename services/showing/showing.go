// File: services/showing/showing.go
package showing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	availabilityRepo "rentaldesk/database/repository/availability"
	showingRepo "rentaldesk/database/repository/showing"
	"rentaldesk/models"
	"rentaldesk/utils"
)

// Postgres error codes surfaced by the showings table constraints.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

type DefaultShowingService struct {
	Repo             showingRepo.ShowingRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Scheduler        ReminderScheduler
}

func (s *DefaultShowingService) Book(ctx context.Context, req models.CreateShowingRequest) (*models.Showing, error) {
	year, month, day, err := ParseCivilDate(req.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	minutes, ok := parseClockTime(req.ScheduledTime)
	if !ok {
		return nil, fmt.Errorf("%w: invalid scheduledTime %q", ErrInvalidInput, req.ScheduledTime)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = 30
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	sh := &models.Showing{
		PropertyID:    req.PropertyID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ScheduledDate: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		ScheduledTime: formatValue(minutes),
		Duration:      duration,
		Status:        models.ShowingPending,
		Notes:         notes,
	}

	if err := s.Repo.Create(ctx, sh); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, ErrSlotTaken
			case pgFKViolation:
				return nil, ErrPropertyGone
			}
		}
		return nil, fmt.Errorf("failed to create showing: %w", err)
	}

	// Reload to pick up the property summary join.
	created, err := s.Repo.GetByID(ctx, sh.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created showing: %w", err)
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleReminder(ctx, created); err != nil {
			// Booking already succeeded; a lost reminder is not worth failing it over.
			utils.GetLogger().Warn("failed to schedule showing reminder",
				zap.String("showingID", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

func (s *DefaultShowingService) List(ctx context.Context, status, propertyID string) ([]models.Showing, error) {
	if status != "" && !models.ValidShowingStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Repo.GetAll(ctx, status, propertyID)
}

func (s *DefaultShowingService) Get(ctx context.Context, id string) (*models.Showing, error) {
	sh, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sh, nil
}

func (s *DefaultShowingService) UpdateStatus(ctx context.Context, id string, req models.UpdateShowingStatusRequest) (*models.Showing, error) {
	if !models.ValidShowingStatus(req.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	sh, err := s.Repo.UpdateStatus(ctx, id, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sh, nil
}

func (s *DefaultShowingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AvailableSlotsForDate implements the available-slots endpoint: load the active
// rules for the date's weekday and the live bookings for that date, then expand.
func (s *DefaultShowingService) AvailableSlotsForDate(ctx context.Context, propertyID, date string) ([]models.Slot, error) {
	year, month, day, err := ParseCivilDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rules, err := s.AvailabilityRepo.GetActiveForDay(ctx, propertyID, DayOfWeek(year, month, day))
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if len(rules) == 0 {
		return []models.Slot{}, nil
	}

	booked, err := s.Repo.BookedTimes(ctx, propertyID, time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to load booked showings: %w", err)
	}

	return AvailableSlots(rules, booked), nil
}
