// File: services/application/application.go
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	applicationRepo "rentaldesk/database/repository/application"
	"rentaldesk/models"
)

var (
	ErrNotFound      = errors.New("application not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid application status")
	ErrPropertyGone  = errors.New("property not found")
)

type ApplicationService interface {
	Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Application, error)
}

type DefaultApplicationService struct {
	Repo applicationRepo.ApplicationRepository
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", ErrInvalidInput, field)
	}
	return &d, nil
}

func (s *DefaultApplicationService) Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	dob, err := optDate(req.DateOfBirth, "dateOfBirth")
	if err != nil {
		return nil, err
	}
	moveIn, err := optDate(req.DesiredMoveInDate, "desiredMoveInDate")
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		PropertyID:  req.PropertyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dob,

		DesiredMoveInDate: moveIn,
		LeaseTerm:         optStr(req.LeaseTerm),
		NumberOfOccupants: req.NumberOfOccupants,
		HasPets:           req.HasPets,
		PetDetails:        optStr(req.PetDetails),

		EmploymentStatus: optStr(req.EmploymentStatus),
		Employer:         optStr(req.Employer),
		JobTitle:         optStr(req.JobTitle),
		MonthlyIncome:    req.MonthlyIncome,

		CurrentAddress:   optStr(req.CurrentAddress),
		LandlordName:     optStr(req.LandlordName),
		LandlordPhone:    optStr(req.LandlordPhone),
		ReasonForLeaving: optStr(req.ReasonForLeaving),

		Reference1Name:         optStr(req.Reference1Name),
		Reference1Phone:        optStr(req.Reference1Phone),
		Reference1Relationship: optStr(req.Reference1Relationship),
		Reference2Name:         optStr(req.Reference2Name),
		Reference2Phone:        optStr(req.Reference2Phone),
		Reference2Relationship: optStr(req.Reference2Relationship),

		AdditionalInfo: optStr(req.AdditionalInfo),
		Status:         models.ApplicationPending,
	}

	if err := s.Repo.Create(ctx, app); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrPropertyGone
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (s *DefaultApplicationService) List(ctx context.Context) ([]models.Application, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultApplicationService) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	app, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}
