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

// menuRepository implements MenuRepository using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu settings repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// GetSettings retrieves the owner's menu settings, or nil when the menu has
// never been configured.
func (r *menuRepository) GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.MenuSettings, error) {
	query := `
		SELECT restaurant_id, public_slug, theme, show_prices, updated_at
		FROM menu_settings
		WHERE restaurant_id = $1
	`

	var s model.MenuSettings
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&s.RestaurantID, &s.PublicSlug, &s.Theme, &s.ShowPrices, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("restaurant_id", ownerID.String()).Msg("failed to query menu settings")
		return nil, fmt.Errorf("failed to query menu settings: %w", err)
	}

	return &s, nil
}

// UpsertSettings creates or replaces the owner's menu settings in one
// statement, keyed on the restaurant id.
func (r *menuRepository) UpsertSettings(ctx context.Context, s *model.MenuSettings) error {
	query := `
		INSERT INTO menu_settings (restaurant_id, public_slug, theme, show_prices, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (restaurant_id) DO UPDATE
		SET public_slug = EXCLUDED.public_slug,
			theme = EXCLUDED.theme,
			show_prices = EXCLUDED.show_prices,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query, s.RestaurantID, s.PublicSlug, s.Theme, s.ShowPrices, s.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", s.RestaurantID.String()).Msg("failed to upsert menu settings")
		return fmt.Errorf("failed to upsert menu settings: %w", err)
	}
	return nil
}
