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

// orderRepository implements OrderRepository using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `o.id, o.order_number, o.restaurant_id, o.customer_id, o.status, o.total, o.delivery_time, o.created_at, o.updated_at, c.name, c.phone, c.address`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.RestaurantID, &o.CustomerID, &o.Status, &o.Total,
		&o.DeliveryTime, &o.CreatedAt, &o.UpdatedAt,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByOwner retrieves all orders owned by the caller, newest first, with
// customer display fields and line items attached.
func (r *orderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", ownerID.String()).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items for a batch of orders in one query.
func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	query := `
		SELECT id, order_id, dish_name, unit_price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("order_count", len(ids)).Msg("failed to query order items")
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishName, &item.UnitPrice, &item.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return fmt.Errorf("error iterating order items: %w", err)
	}

	return nil
}

// GetByID retrieves one order scoped by (id, owner). The same nil result
// covers a missing order and a foreign-owned one, so callers cannot probe
// other restaurants' order identifiers.
func (r *orderRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1 AND o.restaurant_id = $2
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found for owner")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	orders := []model.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// UpdateStatus applies the conditional transition write. The compound match
// on (id, restaurant_id, status) gives at-most-once semantics per
// transition: a concurrent writer that gets there first leaves zero rows
// for this statement.
func (r *orderRepository) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, current, next model.OrderStatus) (*model.Order, error) {
	query := `
		UPDATE orders o
		SET status = $4, updated_at = now()
		FROM customers c
		WHERE o.id = $1 AND o.restaurant_id = $2 AND o.status = $3 AND c.id = o.customer_id
		RETURNING ` + orderColumns + `
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id, ownerID, current, next))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str("order_id", id.String()).
				Str("expected_status", current.String()).
				Msg("conditional status update matched no rows")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.Info().
		Str("order_id", id.String()).
		Str("from", current.String()).
		Str("to", next.String()).
		Msg("order status updated")

	orders := []model.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListRecent retrieves the latest orders with the name of their first line
// item, for the dashboard summary tile.
func (r *orderRepository) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.OrderSummary, error) {
	query := `
		SELECT o.id, o.order_number, o.status, o.total, o.created_at, c.name,
			COALESCE((
				SELECT oi.dish_name FROM order_items oi
				WHERE oi.order_id = o.id
				ORDER BY oi.id
				LIMIT 1
			), '')
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", ownerID.String()).Msg("failed to query recent orders")
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer rows.Close()

	var summaries []model.OrderSummary
	for rows.Next() {
		var s model.OrderSummary
		err := rows.Scan(&s.ID, &s.OrderNumber, &s.Status, &s.TotalAmount, &s.CreatedAt, &s.Client, &s.FirstDish)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan recent order row")
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating recent order rows")
		return nil, fmt.Errorf("error iterating recent orders: %w", err)
	}

	return summaries, nil
}
