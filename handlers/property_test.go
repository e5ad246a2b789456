package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rentaldesk/models"
	"rentaldesk/services/property"
)

type fakePropertyService struct {
	props []models.Property
	err   error
}

func (f *fakePropertyService) List(ctx context.Context) ([]models.Property, error) {
	return f.props, f.err
}

func (f *fakePropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	return nil, property.ErrNotFound
}

func (f *fakePropertyService) Create(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	return nil, nil
}

func (f *fakePropertyService) Update(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error) {
	return nil, property.ErrNotFound
}

func (f *fakePropertyService) Delete(ctx context.Context, id string) error {
	return property.ErrNotFound
}

func propertiesRouter(svc property.PropertyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPropertyHandler(svc)
	r.GET("/api/properties", h.ListPropertiesHandler)
	return r
}

func TestListPropertiesHandler(t *testing.T) {
	svc := &fakePropertyService{props: []models.Property{
		{ID: "prop-1", Title: "Midtown Loft", Available: true},
		{ID: "prop-2", Title: "Garden Duplex", Available: false},
	}}
	r := propertiesRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var got []models.Property
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d properties, want 2", len(got))
	}
	if got[0].ID != "prop-1" || got[1].ID != "prop-2" {
		t.Errorf("unexpected ordering: %+v", got)
	}
}

func TestListPropertiesHandlerIgnoresUnknownQuery(t *testing.T) {
	svc := &fakePropertyService{props: []models.Property{
		{ID: "prop-1", Title: "Midtown Loft", Available: true},
	}}
	r := propertiesRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?status=active", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var got []models.Property
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d properties, want 1", len(got))
	}
}
