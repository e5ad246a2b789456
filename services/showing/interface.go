// File: services/showing/interface.go
package showing

import (
	"context"
	"errors"

	"rentaldesk/models"
)

var (
	ErrNotFound      = errors.New("showing not found")
	ErrPropertyGone  = errors.New("property not found")
	ErrSlotTaken     = errors.New("slot already booked")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid showing status")
)

// ReminderScheduler queues a reminder for a booked showing. Implemented by the
// asynq-backed scheduler in the cron package; nil-safe to leave unset in tests.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, s *models.Showing) error
}

// ShowingService covers the public booking flow, the admin showing queue, and
// the available-slot endpoint.
type ShowingService interface {
	Book(ctx context.Context, req models.CreateShowingRequest) (*models.Showing, error)
	List(ctx context.Context, status, propertyID string) ([]models.Showing, error)
	Get(ctx context.Context, id string) (*models.Showing, error)
	UpdateStatus(ctx context.Context, id string, req models.UpdateShowingStatusRequest) (*models.Showing, error)
	Delete(ctx context.Context, id string) error
	AvailableSlotsForDate(ctx context.Context, propertyID, date string) ([]models.Slot, error)
}
