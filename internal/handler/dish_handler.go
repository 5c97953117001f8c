package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// DishHandler serves menu categories and dishes.
type DishHandler struct {
	dishes service.DishService
	logger zerolog.Logger
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(dishes service.DishService, logger zerolog.Logger) *DishHandler {
	return &DishHandler{
		dishes: dishes,
		logger: logger.With().Str("handler", "dish").Logger(),
	}
}

// ListCategories handles GET /api/categories.
func (h *DishHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	categories, err := h.dishes.ListCategories(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories.
func (h *DishHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	category, err := h.dishes.CreateCategory(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/categories/{id}.
func (h *DishHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

	if err := h.dishes.DeleteCategory(r.Context(), id, ownerID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDishes handles GET /api/dishes.
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	dishes, err := h.dishes.ListDishes(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}

	writeJSON(w, http.StatusOK, dishes)
}

// GetDish handles GET /api/dishes/{id}.
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
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

	dish, err := h.dishes.GetDish(r.Context(), id, ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

// CreateDish handles POST /api/dishes.
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.DishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	dish, err := h.dishes.CreateDish(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, dish)
}

// UpdateDish handles PUT /api/dishes/{id}.
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
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

	var req model.DishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	dish, err := h.dishes.UpdateDish(r.Context(), id, ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

// DeleteDish handles DELETE /api/dishes/{id}.
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
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

	if err := h.dishes.DeleteDish(r.Context(), id, ownerID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
