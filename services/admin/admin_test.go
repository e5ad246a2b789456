package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"rentaldesk/models"
	"rentaldesk/utils"
)

type fakeAdminRepo struct {
	byEmail map[string]*models.Admin
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func seedAdmin(t *testing.T, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &fakeAdminRepo{byEmail: map[string]*models.Admin{
		"ops@example.com": {
			ID:       "admin-1",
			Email:    "ops@example.com",
			Password: string(hash),
			Name:     "Ops Admin",
		},
	}}
}

func TestLoginIssuesAdminRoleToken(t *testing.T) {
	svc := &DefaultAdminService{Repo: seedAdmin(t, "hunter22")}

	token, summary, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "ops@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := utils.ExtractClaims(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	// The auth middleware gates back-office routes on this exact role claim.
	if claims.Role != "admin" {
		t.Errorf("role claim = %q, want %q", claims.Role, "admin")
	}
	if claims.Subject != "admin-1" {
		t.Errorf("subject claim = %q, want %q", claims.Subject, "admin-1")
	}

	if summary == nil || summary.ID != "admin-1" || summary.Email != "ops@example.com" || summary.Name != "Ops Admin" {
		t.Errorf("unexpected admin summary: %+v", summary)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := &DefaultAdminService{Repo: seedAdmin(t, "hunter22")}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ops@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "hunter22"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
