package service

import (
	"context"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// paymentService implements PaymentService. Commission figures are computed
// on read; nothing derived is stored.
type paymentService struct {
	payments repository.PaymentRepository
	logger   zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(payments repository.PaymentRepository, logger zerolog.Logger) PaymentService {
	return &paymentService{
		payments: payments,
		logger:   logger.With().Str("service", "payment").Logger(),
	}
}

// List retrieves the owner's payments with commission and net amounts.
func (s *paymentService) List(ctx context.Context, ownerID uuid.UUID) ([]model.PaymentView, error) {
	payments, err := s.payments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]model.PaymentView, len(payments))
	for i := range payments {
		views[i] = payments[i].View()
	}
	return views, nil
}
