package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler serves the payment list with commission figures.
type PaymentHandler struct {
	payments service.PaymentService
	logger   zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(payments service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger.With().Str("handler", "payment").Logger(),
	}
}

// List handles GET /api/payments.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	payments, err := h.payments.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if payments == nil {
		payments = []model.PaymentView{}
	}

	writeJSON(w, http.StatusOK, payments)
}
