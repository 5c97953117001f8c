package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resto-board/internal/auth"
	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService with bcrypt passwords and JWT sessions.
type authService struct {
	restaurants repository.RestaurantRepository
	tokens      *auth.TokenManager
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(restaurants repository.RestaurantRepository, tokens *auth.TokenManager, logger zerolog.Logger) AuthService {
	return &authService{
		restaurants: restaurants,
		tokens:      tokens,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new owner account and returns a session token.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	restaurant := &model.Restaurant{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Cuisine:      req.Cuisine,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Generate(restaurant.ID, restaurant.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("restaurant_id", restaurant.ID.String()).Msg("restaurant registered")
	return &model.AuthResponse{Token: token, Restaurant: restaurant}, nil
}

// Login verifies credentials and returns a session token. The same error is
// returned for an unknown email and a wrong password.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if restaurant == nil || !auth.CheckPassword(restaurant.PasswordHash, req.Password) {
		s.logger.Debug().Str("email", req.Email).Msg("login rejected")
		return nil, model.ErrBadCredentials
	}

	token, err := s.tokens.Generate(restaurant.ID, restaurant.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("restaurant_id", restaurant.ID.String()).Msg("restaurant logged in")
	return &model.AuthResponse{Token: token, Restaurant: restaurant}, nil
}
