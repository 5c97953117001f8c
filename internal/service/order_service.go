package service

import (
	"context"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultRecentLimit caps the dashboard recent-orders tile.
const defaultRecentLimit = 10

// orderService implements OrderService around the legal-transition table and
// the conditional status write.
type orderService struct {
	orders repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orders: orders,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all of the owner's orders, newest first.
func (s *orderService) List(ctx context.Context, ownerID uuid.UUID) ([]model.OrderView, error) {
	orders, err := s.orders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]model.OrderView, len(orders))
	for i := range orders {
		views[i] = *orders[i].View()
	}
	return views, nil
}

// Get retrieves one owned order.
func (s *orderService) Get(ctx context.Context, id, ownerID uuid.UUID) (*model.OrderView, error) {
	order, err := s.orders.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order.View(), nil
}

// Transition moves an order to the requested status.
//
// The raw status is parsed first, so an unknown value fails before any
// lookup. The current status is then read to check the transition table, and
// the write itself re-checks the status: if a concurrent transition won the
// race, zero rows match and the caller gets a conflict instead of a silently
// overwritten state.
func (s *orderService) Transition(ctx context.Context, id, ownerID uuid.UUID, rawStatus string) (*model.OrderView, error) {
	next, err := model.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Debug().
			Str("order_id", id.String()).
			Str("from", order.Status.String()).
			Str("to", next.String()).
			Msg("illegal transition rejected")
		return nil, model.ErrIllegalTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, ownerID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Someone else moved the order between our read and our write.
		return nil, model.ErrStatusConflict
	}

	return updated.View(), nil
}

// Recent retrieves the latest orders for the dashboard tile.
func (s *orderService) Recent(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.OrderSummary, error) {
	if limit < 1 || limit > 50 {
		limit = defaultRecentLimit
	}
	return s.orders.ListRecent(ctx, ownerID, limit)
}
