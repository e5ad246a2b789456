package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"rentaldesk/models"
)

type fakeTenantRepo struct {
	byEmail map[string]*models.Tenant
	created *models.Tenant
}

func (f *fakeTenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	t.ID = "tenant-1"
	f.created = t
	return nil
}

func (f *fakeTenantRepo) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	if t, ok := f.byEmail[email]; ok {
		return t, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	for _, t := range f.byEmail {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTenantRepo) GetAll(ctx context.Context) ([]models.TenantDirectoryEntry, error) {
	return nil, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &fakeTenantRepo{}
	svc := &DefaultTenantService{Repo: repo}

	resp, err := svc.Register(context.Background(), models.RegisterTenantRequest{
		Email:     "jane@example.com",
		Password:  "hunter22",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token to be issued")
	}
	if resp.Tenant == nil || resp.Tenant.Email != "jane@example.com" {
		t.Errorf("unexpected tenant summary: %+v", resp.Tenant)
	}

	if repo.created.Password == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRejectsBadLeaseDates(t *testing.T) {
	svc := &DefaultTenantService{Repo: &fakeTenantRepo{}}

	_, err := svc.Register(context.Background(), models.RegisterTenantRequest{
		Email:      "jane@example.com",
		Password:   "hunter22",
		FirstName:  "Jane",
		LastName:   "Doe",
		LeaseStart: "junk",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), 10)
	if err != nil {
		t.Fatal(err)
	}
	repo := &fakeTenantRepo{byEmail: map[string]*models.Tenant{
		"jane@example.com": {
			ID:       "tenant-1",
			Email:    "jane@example.com",
			Password: string(hashed),
		},
	}}
	svc := &DefaultTenantService{Repo: repo}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "hunter22"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a token to be issued")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
