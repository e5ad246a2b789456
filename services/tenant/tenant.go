// File: services/tenant/tenant.go
package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	tenantRepo "rentaldesk/database/repository/tenant"
	"rentaldesk/models"
	"rentaldesk/utils"
)

var (
	ErrDuplicateEmail     = errors.New("tenant already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidInput       = errors.New("invalid input")
)

const (
	tokenLifetime     = 24 * time.Hour
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// TenantService is the tenant-portal auth surface plus the admin directory.
type TenantService interface {
	Register(ctx context.Context, req models.RegisterTenantRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Verify(ctx context.Context, tokenString string) (*models.TenantSummary, error)
	Logout(ctx context.Context, tokenString string) error
	Directory(ctx context.Context) ([]models.TenantDirectoryEntry, error)
}

type DefaultTenantService struct {
	Repo tenantRepo.TenantRepository
}

func summary(t *models.Tenant) *models.TenantSummary {
	return &models.TenantSummary{
		ID:         t.ID,
		Email:      t.Email,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		PropertyID: t.PropertyID,
		LeaseStart: t.LeaseStart,
		LeaseEnd:   t.LeaseEnd,
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultTenantService) Register(ctx context.Context, req models.RegisterTenantRequest) (*models.AuthResponse, error) {
	leaseStart, err := parseOptionalDate(req.LeaseStart)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid leaseStart", ErrInvalidInput)
	}
	leaseEnd, err := parseOptionalDate(req.LeaseEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid leaseEnd", ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	t := &models.Tenant{
		Email:      req.Email,
		Password:   string(hashed),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		PropertyID: req.PropertyID,
		LeaseStart: leaseStart,
		LeaseEnd:   leaseEnd,
	}
	if req.Phone != "" {
		t.Phone = &req.Phone
	}
	if req.UnitNumber != "" {
		t.UnitNumber = &req.UnitNumber
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, ErrDuplicateEmail
			case pgFKViolation:
				return nil, fmt.Errorf("%w: unknown propertyId", ErrInvalidInput)
			}
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	token, err := utils.GenerateToken(t.ID, t.Email, "tenant", tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, Tenant: summary(t)}, nil
}

func (s *DefaultTenantService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	t, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(t.ID, t.Email, "tenant", tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, Tenant: summary(t)}, nil
}

func (s *DefaultTenantService) Verify(ctx context.Context, tokenString string) (*models.TenantSummary, error) {
	claims, err := utils.ExtractClaims(tokenString)
	if err != nil || claims.Role != "tenant" {
		return nil, ErrInvalidToken
	}
	if utils.IsTokenRevoked(ctx, utils.HashToken(tokenString)) {
		return nil, ErrInvalidToken
	}

	t, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return summary(t), nil
}

func (s *DefaultTenantService) Logout(ctx context.Context, tokenString string) error {
	if _, err := utils.ExtractClaims(tokenString); err != nil {
		return ErrInvalidToken
	}
	return utils.RevokeToken(ctx, utils.HashToken(tokenString), tokenLifetime)
}

func (s *DefaultTenantService) Directory(ctx context.Context) ([]models.TenantDirectoryEntry, error) {
	return s.Repo.GetAll(ctx)
}
