// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository interface {
	GetByProperty(ctx context.Context, propertyID string) ([]models.AvailabilityRule, error)
	// GetActiveForDay returns the active rules for one weekday, the set the slot
	// calculator consumes.
	GetActiveForDay(ctx context.Context, propertyID string, dayOfWeek int) ([]models.AvailabilityRule, error)
	Create(ctx context.Context, rule *models.AvailabilityRule) error
	Update(ctx context.Context, id string, upd models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error)
	Delete(ctx context.Context, id string) error
}

type postgresAvailabilityRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresAvailabilityRepo constructs a Postgres-backed AvailabilityRepository.
func NewPostgresAvailabilityRepo() AvailabilityRepository {
	return &postgresAvailabilityRepo{pool: database.GetPool()}
}
