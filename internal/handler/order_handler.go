package handler

import (
	"net/http"
	"strconv"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler serves the order book and the status transition endpoint.
type OrderHandler struct {
	orders service.OrderService
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	orders, err := h.orders.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if orders == nil {
		orders = []model.OrderView{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	order, err := h.orders.Get(r.Context(), id, ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Transition handles PATCH /api/orders/{id}/status.
func (h *OrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.TransitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	order, err := h.orders.Transition(r.Context(), id, ownerID, req.Status)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Recent handles GET /api/orders/recent?limit=N.
func (h *OrderHandler) Recent(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	summaries, err := h.orders.Recent(r.Context(), ownerID, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if summaries == nil {
		summaries = []model.OrderSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}
