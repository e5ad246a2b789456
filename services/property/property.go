// File: services/property/property.go
package property

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	propertyRepo "rentaldesk/database/repository/property"
	"rentaldesk/models"
	"rentaldesk/utils"
)

var ErrNotFound = errors.New("property not found")

const (
	listCacheKey = "properties:all"
	listCacheTTL = 5 * time.Minute
)

// PropertyService covers the public listing pages and the admin property manager.
type PropertyService interface {
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error)
	Update(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id string) error
}

type DefaultPropertyService struct {
	Repo  propertyRepo.PropertyRepository
	Cache *redis.Client
}

// List serves the public listing from cache when warm; the cache is invalidated
// on any admin write.
func (s *DefaultPropertyService) List(ctx context.Context) ([]models.Property, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, listCacheKey).Result(); err == nil {
			var props []models.Property
			if err := json.Unmarshal([]byte(data), &props); err == nil {
				return props, nil
			}
		}
	}

	props, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(props); err == nil {
			if err := s.Cache.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache property listing", zap.Error(err))
			}
		}
	}
	return props, nil
}

func (s *DefaultPropertyService) invalidateListing(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, listCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate property listing cache", zap.Error(err))
	}
}

func (s *DefaultPropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *DefaultPropertyService) Create(ctx context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	p := &models.Property{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Sqft:        req.Sqft,
		Available:   available,
		PetsAllowed: req.PetsAllowed,
		Features:    req.Features,
	}
	if err := s.Repo.Create(ctx, p, req.ImageURLs); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return p, nil
}

func (s *DefaultPropertyService) Update(ctx context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return p, nil
}

func (s *DefaultPropertyService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateListing(ctx)
	return nil
}
