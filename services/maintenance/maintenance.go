// File: services/maintenance/maintenance.go
package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	maintenanceRepo "rentaldesk/database/repository/maintenance"
	"rentaldesk/models"
)

var (
	ErrNotFound      = errors.New("maintenance request not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid maintenance status")
)

type MaintenanceService interface {
	Create(ctx context.Context, tenantID string, req models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error)
	ListForTenant(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error)
	ListAll(ctx context.Context, tenantID, propertyID, status string) ([]models.MaintenanceRequest, error)
	Update(ctx context.Context, id string, upd models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error)
}

type DefaultMaintenanceService struct {
	Repo maintenanceRepo.MaintenanceRepository
}

func (s *DefaultMaintenanceService) Create(ctx context.Context, tenantID string, req models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if !models.ValidMaintenancePriority(req.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}

	m := &models.MaintenanceRequest{
		TenantID:    tenantID,
		PropertyID:  req.PropertyID,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
		Photos:      req.Photos,
		Status:      models.MaintenanceNew,
	}
	if req.PreferredAccessTimes != "" {
		m.PreferredAccessTimes = &req.PreferredAccessTimes
	}
	if m.Photos == nil {
		m.Photos = []string{}
	}

	if err := s.Repo.Create(ctx, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: unknown propertyId", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return m, nil
}

func (s *DefaultMaintenanceService) ListForTenant(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error) {
	return s.Repo.GetAll(ctx, maintenanceRepo.MaintenanceFilter{TenantID: tenantID})
}

func (s *DefaultMaintenanceService) ListAll(ctx context.Context, tenantID, propertyID, status string) ([]models.MaintenanceRequest, error) {
	if status != "" && !models.ValidMaintenanceStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.GetAll(ctx, maintenanceRepo.MaintenanceFilter{TenantID: tenantID, PropertyID: propertyID, Status: status})
}

func (s *DefaultMaintenanceService) Update(ctx context.Context, id string, upd models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if upd.Status != nil && !models.ValidMaintenanceStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}
	m, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
