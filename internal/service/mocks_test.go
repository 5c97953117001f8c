package service

import (
	"context"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, current, next model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, ownerID, current, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *mockOrderRepository) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.OrderSummary, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderSummary), args.Error(1)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) Create(ctx context.Context, r *model.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRestaurantRepository) GetByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) Update(ctx context.Context, r *model.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Review, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *mockReviewRepository) Respond(ctx context.Context, id, ownerID uuid.UUID, response string) (*model.Review, error) {
	args := m.Called(ctx, id, ownerID, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Payment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

type mockMenuRepository struct {
	mock.Mock
}

func (m *mockMenuRepository) GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.MenuSettings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuSettings), args.Error(1)
}

func (m *mockMenuRepository) UpsertSettings(ctx context.Context, s *model.MenuSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
