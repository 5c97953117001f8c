package repository

import (
	"context"
	"errors"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements ReviewRepository using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// ListByOwner retrieves the owner's reviews with customer names, newest first.
func (r *reviewRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Review, error) {
	query := `
		SELECT rv.id, rv.restaurant_id, rv.customer_id, rv.rating, rv.comment,
			rv.response, rv.responded_at, rv.created_at, c.name
		FROM reviews rv
		JOIN customers c ON c.id = rv.customer_id
		WHERE rv.restaurant_id = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", ownerID.String()).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		err := rows.Scan(
			&rv.ID, &rv.RestaurantID, &rv.CustomerID, &rv.Rating, &rv.Comment,
			&rv.Response, &rv.RespondedAt, &rv.CreatedAt, &rv.CustomerName,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// Respond writes the restaurant reply into the response column, leaving the
// customer's comment untouched. Responding again overwrites the previous
// reply.
func (r *reviewRepository) Respond(ctx context.Context, id, ownerID uuid.UUID, response string) (*model.Review, error) {
	query := `
		UPDATE reviews rv
		SET response = $3, responded_at = now()
		FROM customers c
		WHERE rv.id = $1 AND rv.restaurant_id = $2 AND c.id = rv.customer_id
		RETURNING rv.id, rv.restaurant_id, rv.customer_id, rv.rating, rv.comment,
			rv.response, rv.responded_at, rv.created_at, c.name
	`

	var rv model.Review
	err := r.pool.QueryRow(ctx, query, id, ownerID, response).Scan(
		&rv.ID, &rv.RestaurantID, &rv.CustomerID, &rv.Rating, &rv.Comment,
		&rv.Response, &rv.RespondedAt, &rv.CreatedAt, &rv.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("review_id", id.String()).Msg("review not found for owner")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("review_id", id.String()).Msg("failed to respond to review")
		return nil, fmt.Errorf("failed to respond to review: %w", err)
	}

	return &rv, nil
}
