package repository

import (
	"context"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// paymentRepository implements PaymentRepository using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// ListByOwner retrieves all payments owned by the caller, newest first.
func (r *paymentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Payment, error) {
	query := `
		SELECT id, restaurant_id, order_id, method, amount, status, created_at
		FROM payments
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", ownerID.String()).Msg("failed to query payments")
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		err := rows.Scan(&p.ID, &p.RestaurantID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan payment row")
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating payment rows")
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
