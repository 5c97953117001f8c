package service

import (
	"context"
	"testing"
	"time"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder(id, ownerID uuid.UUID, status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:           id,
		OrderNumber:  "ORD-1001",
		RestaurantID: ownerID,
		CustomerID:   uuid.New(),
		Status:       status,
		Total:        decimal.RequireFromString("34.50"),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		CustomerName: "Ada",
	}
}

func TestTransitionHappyPath(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	orderID := uuid.New()
	ownerID := uuid.New()
	current := testOrder(orderID, ownerID, model.StatusPending)
	updated := testOrder(orderID, ownerID, model.StatusConfirmed)

	repo.On("GetByID", mock.Anything, orderID, ownerID).Return(current, nil)
	repo.On("UpdateStatus", mock.Anything, orderID, ownerID, model.StatusPending, model.StatusConfirmed).Return(updated, nil)

	view, err := svc.Transition(context.Background(), orderID, ownerID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, view.Status)
	repo.AssertExpectations(t)
}

func TestTransitionInvalidStatus(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.Transition(context.Background(), uuid.New(), uuid.New(), "SHIPPED")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)

	// Nothing may touch the repository when the status itself is garbage.
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderNotFound(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	orderID := uuid.New()
	ownerID := uuid.New()
	repo.On("GetByID", mock.Anything, orderID, ownerID).Return(nil, nil)

	_, err := svc.Transition(context.Background(), orderID, ownerID, "CONFIRMED")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestTransitionIllegal(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	orderID := uuid.New()
	ownerID := uuid.New()
	repo.On("GetByID", mock.Anything, orderID, ownerID).Return(testOrder(orderID, ownerID, model.StatusDelivered), nil)

	_, err := svc.Transition(context.Background(), orderID, ownerID, "PENDING")
	assert.ErrorIs(t, err, model.ErrIllegalTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionConflict(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	orderID := uuid.New()
	ownerID := uuid.New()
	repo.On("GetByID", mock.Anything, orderID, ownerID).Return(testOrder(orderID, ownerID, model.StatusPending), nil)
	// A concurrent writer got there first: the conditional update matches
	// zero rows.
	repo.On("UpdateStatus", mock.Anything, orderID, ownerID, model.StatusPending, model.StatusConfirmed).Return(nil, nil)

	_, err := svc.Transition(context.Background(), orderID, ownerID, "CONFIRMED")
	assert.ErrorIs(t, err, model.ErrStatusConflict)
}

func TestListMapsToViews(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	ownerID := uuid.New()
	order := testOrder(uuid.New(), ownerID, model.StatusPending)
	order.Items = []model.OrderItem{{DishName: "Pizza", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2}}

	repo.On("ListByOwner", mock.Anything, ownerID).Return([]model.Order{*order}, nil)

	views, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ada", views[0].Client)
	assert.Len(t, views[0].Items, 1)
}

func TestRecentClampsLimit(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := NewOrderService(repo, zerolog.Nop())

	ownerID := uuid.New()
	repo.On("ListRecent", mock.Anything, ownerID, defaultRecentLimit).Return([]model.OrderSummary{}, nil)

	_, err := svc.Recent(context.Background(), ownerID, 0)
	require.NoError(t, err)
	_, err = svc.Recent(context.Background(), ownerID, 9999)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
