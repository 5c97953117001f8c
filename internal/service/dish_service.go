package service

import (
	"context"
	"time"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// dishService implements DishService.
type dishService struct {
	dishes repository.DishRepository
	logger zerolog.Logger
}

// NewDishService creates a new dish service.
func NewDishService(dishes repository.DishRepository, logger zerolog.Logger) DishService {
	return &dishService{
		dishes: dishes,
		logger: logger.With().Str("service", "dish").Logger(),
	}
}

// ListCategories retrieves the owner's menu categories.
func (s *dishService) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	return s.dishes.ListCategories(ctx, ownerID)
}

// CreateCategory adds a menu category.
func (s *dishService) CreateCategory(ctx context.Context, ownerID uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	category := &model.Category{
		ID:           uuid.New(),
		RestaurantID: ownerID,
		Name:         req.Name,
		Position:     req.Position,
	}
	if err := s.dishes.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID.String()).Msg("category created")
	return category, nil
}

// DeleteCategory removes an owned category.
func (s *dishService) DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) error {
	deleted, err := s.dishes.DeleteCategory(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrCategoryNotFound
	}
	return nil
}

// ListDishes retrieves all dishes owned by the caller.
func (s *dishService) ListDishes(ctx context.Context, ownerID uuid.UUID) ([]model.Dish, error) {
	return s.dishes.List(ctx, ownerID)
}

// GetDish retrieves one owned dish.
func (s *dishService) GetDish(ctx context.Context, id, ownerID uuid.UUID) (*model.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, model.ErrDishNotFound
	}
	return dish, nil
}

// CreateDish adds a dish to the owner's menu. New dishes default to
// available unless the request says otherwise.
func (s *dishService) CreateDish(ctx context.Context, ownerID uuid.UUID, req *model.DishRequest) (*model.Dish, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	dish := &model.Dish{
		ID:           uuid.New(),
		RestaurantID: ownerID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Ingredients:  req.Ingredients,
		Available:    available,
		ImageURL:     req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, err
	}

	s.logger.Info().Str("dish_id", dish.ID.String()).Msg("dish created")
	return dish, nil
}

// UpdateDish edits an owned dish.
func (s *dishService) UpdateDish(ctx context.Context, id, ownerID uuid.UUID, req *model.DishRequest) (*model.Dish, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	dish, err := s.dishes.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, model.ErrDishNotFound
	}

	dish.CategoryID = req.CategoryID
	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.Ingredients = req.Ingredients
	if req.Available != nil {
		dish.Available = *req.Available
	}
	dish.ImageURL = req.ImageURL
	dish.UpdatedAt = time.Now()

	updated, err := s.dishes.Update(ctx, dish)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.ErrDishNotFound
	}

	s.logger.Info().Str("dish_id", dish.ID.String()).Msg("dish updated")
	return dish, nil
}

// DeleteDish removes an owned dish.
func (s *dishService) DeleteDish(ctx context.Context, id, ownerID uuid.UUID) error {
	deleted, err := s.dishes.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrDishNotFound
	}

	s.logger.Info().Str("dish_id", id.String()).Msg("dish deleted")
	return nil
}
