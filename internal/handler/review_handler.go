package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler serves customer reviews and reply publishing.
type ReviewHandler struct {
	reviews service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	reviews, err := h.reviews.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Respond handles POST /api/reviews/{id}/response.
func (h *ReviewHandler) Respond(w http.ResponseWriter, r *http.Request) {
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

	var req model.RespondRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	review, err := h.reviews.Respond(r.Context(), id, ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
