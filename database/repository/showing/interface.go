// File: database/repository/showing/interface.go
package showingRepo

import (
	"context"
	"time"

	"rentaldesk/database"
	"rentaldesk/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowingRepository interface {
	Create(ctx context.Context, s *models.Showing) error
	GetAll(ctx context.Context, status, propertyID string) ([]models.Showing, error)
	GetByID(ctx context.Context, id string) (*models.Showing, error)
	UpdateStatus(ctx context.Context, id, status string, notes *string) (*models.Showing, error)
	Delete(ctx context.Context, id string) error
	// BookedTimes returns the scheduled_time strings of PENDING/CONFIRMED showings
	// for the property on the given calendar date.
	BookedTimes(ctx context.Context, propertyID string, date time.Time) ([]string, error)
	// CompletePastConfirmed flips CONFIRMED showings dated before the cutoff to
	// COMPLETED and returns how many rows changed.
	CompletePastConfirmed(ctx context.Context, cutoff time.Time) (int64, error)
}

type postgresShowingRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresShowingRepo constructs a Postgres-backed ShowingRepository.
func NewPostgresShowingRepo() ShowingRepository {
	return &postgresShowingRepo{pool: database.GetPool()}
}
