package services

import (
	"context"
	"encoding/json"
	"time"

	"food-delivery/models"

	"github.com/redis/go-redis/v9"
)

const (
	restaurantCacheKey = "restaurants:active"
	restaurantCacheTTL = 5 * time.Minute
)

type RestaurantRepository interface {
	GetAllActive(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id int) (*models.Restaurant, error)
	Create(ctx context.Context, rest *models.Restaurant) error
	Update(ctx context.Context, rest *models.Restaurant) error
	Delete(ctx context.Context, id int) (bool, error)
}

// RestaurantService fronts the repository with a short-lived Redis cache
// for the public listing. A nil client disables caching.
type RestaurantService struct {
	repo  RestaurantRepository
	cache *redis.Client
}

func NewRestaurantService(repo RestaurantRepository, cache *redis.Client) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache}
}

func (s *RestaurantService) ListActive(ctx context.Context) ([]models.Restaurant, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, restaurantCacheKey).Result(); err == nil {
			var restaurants []models.Restaurant
			if err := json.Unmarshal([]byte(raw), &restaurants); err == nil {
				return restaurants, nil
			}
		}
	}

	restaurants, err := s.repo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(restaurants); err == nil {
			s.cache.Set(ctx, restaurantCacheKey, raw, restaurantCacheTTL)
		}
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*models.Restaurant, error) {
	rest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return rest, nil
}

func (s *RestaurantService) Create(ctx context.Context, rest *models.Restaurant) error {
	if err := s.repo.Create(ctx, rest); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RestaurantService) Update(ctx context.Context, id int, req models.UpdateRestaurantRequest) (*models.Restaurant, error) {
	rest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.Cuisine != nil {
		rest.Cuisine = *req.Cuisine
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.Phone != nil {
		rest.Phone = *req.Phone
	}
	if req.Email != nil {
		rest.Email = *req.Email
	}
	if req.ImageURL != nil {
		rest.ImageURL = *req.ImageURL
	}
	if req.OpeningHours != nil {
		rest.OpeningHours = *req.OpeningHours
	}
	if req.IsActive != nil {
		rest.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, rest); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return rest, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *RestaurantService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, restaurantCacheKey)
	}
}
