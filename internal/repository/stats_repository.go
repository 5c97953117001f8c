package repository

import (
	"context"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// statsRepository computes dashboard aggregates with plain SQL. Nothing is
// cached; every call reflects the current rows.
type statsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatsRepository creates a new PostgreSQL-backed stats repository.
func NewStatsRepository(pool *pgxpool.Pool, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stats").Logger(),
	}
}

// Dashboard computes the owner's dashboard figures: revenue over delivered
// orders, order counts per status, review average, and the top dishes by
// quantity sold.
func (r *statsRepository) Dashboard(ctx context.Context, ownerID uuid.UUID) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		TotalRevenue:   decimal.Zero,
		OrdersByStatus: make(map[model.OrderStatus]int),
	}

	if err := r.orderStats(ctx, ownerID, stats); err != nil {
		return nil, err
	}
	if err := r.reviewStats(ctx, ownerID, stats); err != nil {
		return nil, err
	}
	if err := r.topDishes(ctx, ownerID, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) orderStats(ctx context.Context, ownerID uuid.UUID, stats *model.DashboardStats) error {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total) FILTER (WHERE status = 'DELIVERED'), 0)
		FROM orders
		WHERE restaurant_id = $1
		GROUP BY status
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order stats")
		return fmt.Errorf("failed to query order stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status  model.OrderStatus
			count   int
			revenue decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order stats row")
			return fmt.Errorf("failed to scan order stats: %w", err)
		}
		stats.OrdersByStatus[status] = count
		stats.TotalOrders += count
		stats.TotalRevenue = stats.TotalRevenue.Add(revenue)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating order stats: %w", err)
	}
	return nil
}

func (r *statsRepository) reviewStats(ctx context.Context, ownerID uuid.UUID, stats *model.DashboardStats) error {
	query := `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE restaurant_id = $1
	`

	err := r.pool.QueryRow(ctx, query, ownerID).Scan(&stats.ReviewCount, &stats.AverageRating)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query review stats")
		return fmt.Errorf("failed to query review stats: %w", err)
	}
	return nil
}

func (r *statsRepository) topDishes(ctx context.Context, ownerID uuid.UUID, stats *model.DashboardStats) error {
	query := `
		SELECT oi.dish_name, SUM(oi.quantity)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.restaurant_id = $1 AND o.status <> 'CANCELLED'
		GROUP BY oi.dish_name
		ORDER BY SUM(oi.quantity) DESC, oi.dish_name
		LIMIT 5
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top dishes")
		return fmt.Errorf("failed to query top dishes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d model.DishSales
		if err := rows.Scan(&d.Name, &d.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top dish row")
			return fmt.Errorf("failed to scan top dish: %w", err)
		}
		stats.TopDishes = append(stats.TopDishes, d)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating top dishes: %w", err)
	}
	return nil
}
