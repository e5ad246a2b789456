package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rentaldesk/models"
	"rentaldesk/services/showing"
)

type fakeShowingService struct {
	slots []models.Slot
	err   error
}

func (f *fakeShowingService) Book(ctx context.Context, req models.CreateShowingRequest) (*models.Showing, error) {
	return nil, f.err
}

func (f *fakeShowingService) List(ctx context.Context, status, propertyID string) ([]models.Showing, error) {
	return nil, nil
}

func (f *fakeShowingService) Get(ctx context.Context, id string) (*models.Showing, error) {
	return nil, showing.ErrNotFound
}

func (f *fakeShowingService) UpdateStatus(ctx context.Context, id string, req models.UpdateShowingStatusRequest) (*models.Showing, error) {
	return nil, showing.ErrNotFound
}

func (f *fakeShowingService) Delete(ctx context.Context, id string) error {
	return showing.ErrNotFound
}

func (f *fakeShowingService) AvailableSlotsForDate(ctx context.Context, propertyID, date string) ([]models.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

func slotsRouter(svc showing.ShowingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewShowingHandler(svc)
	r.GET("/api/showings/property/:propertyId/available-slots", h.AvailableSlotsHandler)
	return r
}

func TestAvailableSlotsHandler(t *testing.T) {
	svc := &fakeShowingService{slots: []models.Slot{
		{Time: "9:00 AM", Value: "09:00", Duration: 30},
		{Time: "9:30 AM", Value: "09:30", Duration: 30},
	}}
	r := slotsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showings/property/prop-1/available-slots?date=2024-06-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var slots []models.Slot
	if err := json.Unmarshal(w.Body.Bytes(), &slots); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(slots) != 2 || slots[0].Value != "09:00" {
		t.Errorf("unexpected slots: %+v", slots)
	}
}

func TestAvailableSlotsHandlerMissingDate(t *testing.T) {
	r := slotsRouter(&fakeShowingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showings/property/prop-1/available-slots", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "date") {
		t.Errorf("expected error mentioning date, got %s", w.Body.String())
	}
}

func TestAvailableSlotsHandlerBadDate(t *testing.T) {
	r := slotsRouter(&fakeShowingService{err: showing.ErrInvalidInput})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showings/property/prop-1/available-slots?date=junk", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAvailableSlotsHandlerEmpty(t *testing.T) {
	r := slotsRouter(&fakeShowingService{slots: []models.Slot{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showings/property/prop-1/available-slots?date=2024-06-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}
