package service

import (
	"context"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// statsService implements StatsService.
type statsService struct {
	stats  repository.StatsRepository
	logger zerolog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(stats repository.StatsRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		stats:  stats,
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

// Dashboard computes the owner's dashboard aggregates. Figures are always
// recomputed from the store; staleness never exceeds one request.
func (s *statsService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*model.DashboardStats, error) {
	stats, err := s.stats.Dashboard(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if stats.TopDishes == nil {
		stats.TopDishes = []model.DishSales{}
	}
	return stats, nil
}
