package repository

import (
	"context"
	"errors"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// restaurantRepository implements RestaurantRepository using PostgreSQL.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

// Create inserts a new owner account. A unique-violation on email maps to
// ErrEmailTaken.
func (r *restaurantRepository) Create(ctx context.Context, rest *model.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, email, password_hash, name, description, address, phone, cuisine, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		rest.ID, rest.Email, rest.PasswordHash, rest.Name, rest.Description,
		rest.Address, rest.Phone, rest.Cuisine, rest.LogoURL, rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrEmailTaken
		}
		r.logger.Error().Err(err).Str("email", rest.Email).Msg("failed to create restaurant")
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	r.logger.Debug().Str("restaurant_id", rest.ID.String()).Msg("restaurant created")
	return nil
}

const restaurantColumns = `id, email, password_hash, name, description, address, phone, cuisine, logo_url, created_at, updated_at`

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := row.Scan(
		&rest.ID, &rest.Email, &rest.PasswordHash, &rest.Name, &rest.Description,
		&rest.Address, &rest.Phone, &rest.Cuisine, &rest.LogoURL, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetByEmail retrieves an account by email, or nil if absent.
func (r *restaurantRepository) GetByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email = $1`

	rest, err := scanRestaurant(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query restaurant by email")
		return nil, fmt.Errorf("failed to query restaurant by email: %w", err)
	}
	return rest, nil
}

// GetByID retrieves an account by id, or nil if absent.
func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	rest, err := scanRestaurant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("restaurant_id", id.String()).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}
	return rest, nil
}

// Update persists profile fields of an existing account.
func (r *restaurantRepository) Update(ctx context.Context, rest *model.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, description = $3, address = $4, phone = $5, cuisine = $6, logo_url = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		rest.ID, rest.Name, rest.Description, rest.Address, rest.Phone,
		rest.Cuisine, rest.LogoURL, rest.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", rest.ID.String()).Msg("failed to update restaurant")
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRestaurantNotFound
	}

	return nil
}
