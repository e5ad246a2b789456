// File: services/inquiry/inquiry.go
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	inquiryRepo "rentaldesk/database/repository/inquiry"
	"rentaldesk/models"
)

var (
	ErrNotFound      = errors.New("inquiry not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid inquiry status")
	ErrPropertyGone  = errors.New("property not found")
)

type InquiryService interface {
	Create(ctx context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error)
}

type DefaultInquiryService struct {
	Repo inquiryRepo.InquiryRepository
}

func validInquiryType(t string) bool {
	switch t {
	case models.InquiryGeneral, models.InquiryShowing, models.InquiryApplication:
		return true
	}
	return false
}

func (s *DefaultInquiryService) Create(ctx context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error) {
	if !validInquiryType(req.InquiryType) {
		return nil, fmt.Errorf("%w: unknown inquiryType %q", ErrInvalidInput, req.InquiryType)
	}

	inq := &models.Inquiry{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		InquiryType: req.InquiryType,
		Status:      models.InquiryNew,
	}
	if req.Phone != "" {
		inq.Phone = &req.Phone
	}
	if req.PreferredDate != "" {
		d, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid preferredDate", ErrInvalidInput)
		}
		inq.PreferredDate = &d
	}
	if req.PreferredTime != "" {
		inq.PreferredTime = &req.PreferredTime
	}

	if err := s.Repo.Create(ctx, inq); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrPropertyGone
		}
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return inq, nil
}

func (s *DefaultInquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultInquiryService) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	if !models.ValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}
	inq, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inq, nil
}
