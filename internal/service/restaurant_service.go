package service

import (
	"context"
	"time"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// restaurantService implements RestaurantService.
type restaurantService struct {
	restaurants repository.RestaurantRepository
	logger      zerolog.Logger
}

// NewRestaurantService creates a new restaurant profile service.
func NewRestaurantService(restaurants repository.RestaurantRepository, logger zerolog.Logger) RestaurantService {
	return &restaurantService{
		restaurants: restaurants,
		logger:      logger.With().Str("service", "restaurant").Logger(),
	}
}

// GetProfile retrieves the owner's profile.
func (s *restaurantService) GetProfile(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, model.ErrRestaurantNotFound
	}
	return restaurant, nil
}

// UpdateProfile edits the owner's profile fields and returns the result.
func (s *restaurantService) UpdateProfile(ctx context.Context, ownerID uuid.UUID, req *model.UpdateProfileRequest) (*model.Restaurant, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, model.ErrRestaurantNotFound
	}

	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone
	restaurant.Cuisine = req.Cuisine
	restaurant.LogoURL = req.LogoURL
	restaurant.UpdatedAt = time.Now()

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	s.logger.Info().Str("restaurant_id", ownerID.String()).Msg("profile updated")
	return restaurant, nil
}
