package repository

import (
	"context"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// promotionRepository implements PromotionRepository using PostgreSQL.
type promotionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPromotionRepository creates a new PostgreSQL-backed promotion repository.
func NewPromotionRepository(pool *pgxpool.Pool, logger zerolog.Logger) PromotionRepository {
	return &promotionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "promotion").Logger(),
	}
}

// ListPromotions retrieves the owner's promotions, newest window first.
func (r *promotionRepository) ListPromotions(ctx context.Context, ownerID uuid.UUID) ([]model.Promotion, error) {
	query := `
		SELECT id, restaurant_id, code, description, discount_percent, starts_at, ends_at, active
		FROM promotions
		WHERE restaurant_id = $1
		ORDER BY starts_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query promotions")
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	var promotions []model.Promotion
	for rows.Next() {
		var p model.Promotion
		err := rows.Scan(&p.ID, &p.RestaurantID, &p.Code, &p.Description, &p.DiscountPercent, &p.StartsAt, &p.EndsAt, &p.Active)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan promotion row")
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating promotions: %w", err)
	}

	return promotions, nil
}

// CreatePromotion inserts a new promotion.
func (r *promotionRepository) CreatePromotion(ctx context.Context, p *model.Promotion) error {
	query := `
		INSERT INTO promotions (id, restaurant_id, code, description, discount_percent, starts_at, ends_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.RestaurantID, p.Code, p.Description, p.DiscountPercent, p.StartsAt, p.EndsAt, p.Active)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", p.ID.String()).Msg("failed to create promotion")
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// UpdatePromotion persists an owned promotion. Returns false when it does
// not exist or belongs to another restaurant.
func (r *promotionRepository) UpdatePromotion(ctx context.Context, p *model.Promotion) (bool, error) {
	query := `
		UPDATE promotions
		SET code = $3, description = $4, discount_percent = $5, starts_at = $6, ends_at = $7, active = $8
		WHERE id = $1 AND restaurant_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.RestaurantID, p.Code, p.Description, p.DiscountPercent, p.StartsAt, p.EndsAt, p.Active)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", p.ID.String()).Msg("failed to update promotion")
		return false, fmt.Errorf("failed to update promotion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeletePromotion removes an owned promotion.
func (r *promotionRepository) DeletePromotion(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM promotions WHERE id = $1 AND restaurant_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to delete promotion")
		return false, fmt.Errorf("failed to delete promotion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListCampaigns retrieves the owner's campaigns, newest window first.
func (r *promotionRepository) ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]model.Campaign, error) {
	query := `
		SELECT id, restaurant_id, title, description, budget, starts_at, ends_at, status
		FROM campaigns
		WHERE restaurant_id = $1
		ORDER BY starts_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query campaigns")
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		err := rows.Scan(&c.ID, &c.RestaurantID, &c.Title, &c.Description, &c.Budget, &c.StartsAt, &c.EndsAt, &c.Status)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan campaign row")
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", err)
	}

	return campaigns, nil
}

// CreateCampaign inserts a new campaign.
func (r *promotionRepository) CreateCampaign(ctx context.Context, c *model.Campaign) error {
	query := `
		INSERT INTO campaigns (id, restaurant_id, title, description, budget, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.RestaurantID, c.Title, c.Description, c.Budget, c.StartsAt, c.EndsAt, c.Status)
	if err != nil {
		r.logger.Error().Err(err).Str("campaign_id", c.ID.String()).Msg("failed to create campaign")
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// UpdateCampaign persists an owned campaign.
func (r *promotionRepository) UpdateCampaign(ctx context.Context, c *model.Campaign) (bool, error) {
	query := `
		UPDATE campaigns
		SET title = $3, description = $4, budget = $5, starts_at = $6, ends_at = $7, status = $8
		WHERE id = $1 AND restaurant_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.RestaurantID, c.Title, c.Description, c.Budget, c.StartsAt, c.EndsAt, c.Status)
	if err != nil {
		r.logger.Error().Err(err).Str("campaign_id", c.ID.String()).Msg("failed to update campaign")
		return false, fmt.Errorf("failed to update campaign: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCampaign removes an owned campaign.
func (r *promotionRepository) DeleteCampaign(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM campaigns WHERE id = $1 AND restaurant_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("campaign_id", id.String()).Msg("failed to delete campaign")
		return false, fmt.Errorf("failed to delete campaign: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
