package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler serves the owner's profile.
type RestaurantHandler struct {
	restaurants service.RestaurantService
	logger      zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant profile handler.
func NewRestaurantHandler(restaurants service.RestaurantService, logger zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurants: restaurants,
		logger:      logger.With().Str("handler", "restaurant").Logger(),
	}
}

// GetProfile handles GET /api/profile.
func (h *RestaurantHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	restaurant, err := h.restaurants.GetProfile(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}

// UpdateProfile handles PUT /api/profile.
func (h *RestaurantHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	restaurant, err := h.restaurants.UpdateProfile(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}
