// File: services/admin/admin.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	adminRepo "rentaldesk/database/repository/admin"
	"rentaldesk/models"
	"rentaldesk/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenLifetime = 24 * time.Hour

// AdminService covers back-office authentication.
type AdminService interface {
	Login(ctx context.Context, req models.LoginRequest) (string, *models.AdminSummary, error)
	Verify(ctx context.Context, tokenString string) (*models.AdminSummary, error)
	Logout(ctx context.Context, tokenString string) error
}

type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

func summary(a *models.Admin) *models.AdminSummary {
	return &models.AdminSummary{ID: a.ID, Email: a.Email, Name: a.Name}
}

func (s *DefaultAdminService) Login(ctx context.Context, req models.LoginRequest) (string, *models.AdminSummary, error) {
	a, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(a.ID, a.Email, "admin", tokenLifetime)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, summary(a), nil
}

func (s *DefaultAdminService) Verify(ctx context.Context, tokenString string) (*models.AdminSummary, error) {
	claims, err := utils.ExtractClaims(tokenString)
	if err != nil || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	if utils.IsTokenRevoked(ctx, utils.HashToken(tokenString)) {
		return nil, ErrInvalidToken
	}

	a, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return summary(a), nil
}

func (s *DefaultAdminService) Logout(ctx context.Context, tokenString string) error {
	if _, err := utils.ExtractClaims(tokenString); err != nil {
		return ErrInvalidToken
	}
	return utils.RevokeToken(ctx, utils.HashToken(tokenString), tokenLifetime)
}
