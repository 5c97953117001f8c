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

// dishRepository implements DishRepository using PostgreSQL.
type dishRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(pool *pgxpool.Pool, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// ListCategories retrieves the owner's menu categories ordered by position.
func (r *dishRepository) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error) {
	query := `
		SELECT id, restaurant_id, name, position
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY position, name
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Position); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a new menu category.
func (r *dishRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (id, restaurant_id, name, position)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.RestaurantID, c.Name, c.Position)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", c.ID.String()).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory removes an owned category. Dishes keep existing with a null
// category reference.
func (r *dishRepository) DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM categories WHERE id = $1 AND restaurant_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

const dishColumns = `id, restaurant_id, category_id, name, description, price, ingredients, available, image_url, created_at, updated_at`

func scanDish(row pgx.Row) (*model.Dish, error) {
	var d model.Dish
	err := row.Scan(
		&d.ID, &d.RestaurantID, &d.CategoryID, &d.Name, &d.Description,
		&d.Price, &d.Ingredients, &d.Available, &d.ImageURL, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List retrieves all dishes owned by the caller.
func (r *dishRepository) List(ctx context.Context, ownerID uuid.UUID) ([]model.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE restaurant_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []model.Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

// GetByID retrieves one dish scoped by (id, owner), or nil if absent.
func (r *dishRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE id = $1 AND restaurant_id = $2`

	d, err := scanDish(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("dish_id", id.String()).Msg("failed to query dish")
		return nil, fmt.Errorf("failed to query dish: %w", err)
	}
	return d, nil
}

// Create inserts a new dish.
func (r *dishRepository) Create(ctx context.Context, d *model.Dish) error {
	query := `
		INSERT INTO dishes (` + dishColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.RestaurantID, d.CategoryID, d.Name, d.Description,
		d.Price, d.Ingredients, d.Available, d.ImageURL, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", d.ID.String()).Msg("failed to create dish")
		return fmt.Errorf("failed to create dish: %w", err)
	}

	r.logger.Debug().Str("dish_id", d.ID.String()).Msg("dish created")
	return nil
}

// Update persists an owned dish. Returns false when the dish does not exist
// or belongs to another restaurant.
func (r *dishRepository) Update(ctx context.Context, d *model.Dish) (bool, error) {
	query := `
		UPDATE dishes
		SET category_id = $3, name = $4, description = $5, price = $6,
			ingredients = $7, available = $8, image_url = $9, updated_at = $10
		WHERE id = $1 AND restaurant_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		d.ID, d.RestaurantID, d.CategoryID, d.Name, d.Description,
		d.Price, d.Ingredients, d.Available, d.ImageURL, d.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", d.ID.String()).Msg("failed to update dish")
		return false, fmt.Errorf("failed to update dish: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes an owned dish.
func (r *dishRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM dishes WHERE id = $1 AND restaurant_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("dish_id", id.String()).Msg("failed to delete dish")
		return false, fmt.Errorf("failed to delete dish: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
