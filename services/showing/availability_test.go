package showing

import (
	"context"
	"errors"
	"testing"

	"rentaldesk/models"
)

type fakeAvailabilityRepo struct {
	created *models.AvailabilityRule
	rules   []models.AvailabilityRule
}

func (f *fakeAvailabilityRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeAvailabilityRepo) GetActiveForDay(ctx context.Context, propertyID string, dayOfWeek int) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.DayOfWeek == dayOfWeek && r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	rule.ID = "rule-1"
	f.created = rule
	return nil
}

func (f *fakeAvailabilityRepo) Update(ctx context.Context, id string, upd models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAvailabilityRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func intPtr(v int) *int { return &v }

func TestAvailabilityCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateAvailabilityRequest
	}{
		{"missing day", models.CreateAvailabilityRequest{StartTime: "09:00", EndTime: "17:00"}},
		{"day out of range", models.CreateAvailabilityRequest{DayOfWeek: intPtr(7), StartTime: "09:00", EndTime: "17:00"}},
		{"negative day", models.CreateAvailabilityRequest{DayOfWeek: intPtr(-1), StartTime: "09:00", EndTime: "17:00"}},
		{"bad start time", models.CreateAvailabilityRequest{DayOfWeek: intPtr(1), StartTime: "9am", EndTime: "17:00"}},
		{"bad end time", models.CreateAvailabilityRequest{DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "25:00"}},
		{"inverted window", models.CreateAvailabilityRequest{DayOfWeek: intPtr(1), StartTime: "17:00", EndTime: "09:00"}},
		{"zero-width window", models.CreateAvailabilityRequest{DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "09:00"}},
	}

	svc := &DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "prop-1", tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAvailabilityCreateDefaults(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := &DefaultAvailabilityService{Repo: repo}

	rule, err := svc.Create(context.Background(), "prop-1", models.CreateAvailabilityRequest{
		DayOfWeek: intPtr(6),
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.SlotDuration != 30 {
		t.Errorf("expected default slot duration 30, got %d", rule.SlotDuration)
	}
	if !rule.IsActive {
		t.Error("expected new rule to be active")
	}
	if repo.created == nil || repo.created.PropertyID != "prop-1" {
		t.Error("rule was not persisted with the property id")
	}
}

func TestAvailabilityUpdateValidation(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}}

	bad := "26:00"
	if _, err := svc.Update(context.Background(), "rule-1", models.UpdateAvailabilityRequest{StartTime: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	day := 9
	if _, err := svc.Update(context.Background(), "rule-1", models.UpdateAvailabilityRequest{DayOfWeek: &day}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
