package service

import (
	"context"
	"testing"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentListComputesCommission(t *testing.T) {
	repo := new(mockPaymentRepository)
	svc := NewPaymentService(repo, zerolog.Nop())

	ownerID := uuid.New()
	repo.On("ListByOwner", mock.Anything, ownerID).Return([]model.Payment{
		{ID: uuid.New(), Method: model.MethodCard, Amount: decimal.RequireFromString("100.00"), Status: model.PaymentCompleted},
		{ID: uuid.New(), Method: model.MethodCash, Amount: decimal.RequireFromString("50.00"), Status: model.PaymentCompleted},
	}, nil)

	views, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].Commission.Equal(decimal.RequireFromString("2.90")))
	assert.True(t, views[0].Net.Equal(decimal.RequireFromString("97.10")))
	assert.True(t, views[1].Commission.IsZero())
	assert.True(t, views[1].Net.Equal(decimal.RequireFromString("50.00")))
}
