package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// PromotionHandler serves promotions and marketing campaigns.
type PromotionHandler struct {
	promotions service.PromotionService
	logger     zerolog.Logger
}

// NewPromotionHandler creates a new promotion handler.
func NewPromotionHandler(promotions service.PromotionService, logger zerolog.Logger) *PromotionHandler {
	return &PromotionHandler{
		promotions: promotions,
		logger:     logger.With().Str("handler", "promotion").Logger(),
	}
}

// ListPromotions handles GET /api/promotions.
func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	promotions, err := h.promotions.ListPromotions(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if promotions == nil {
		promotions = []model.Promotion{}
	}

	writeJSON(w, http.StatusOK, promotions)
}

// CreatePromotion handles POST /api/promotions.
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.PromotionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	promotion, err := h.promotions.CreatePromotion(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, promotion)
}

// UpdatePromotion handles PUT /api/promotions/{id}.
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
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

	var req model.PromotionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	promotion, err := h.promotions.UpdatePromotion(r.Context(), id, ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, promotion)
}

// DeletePromotion handles DELETE /api/promotions/{id}.
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
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

	if err := h.promotions.DeletePromotion(r.Context(), id, ownerID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCampaigns handles GET /api/campaigns.
func (h *PromotionHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	campaigns, err := h.promotions.ListCampaigns(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if campaigns == nil {
		campaigns = []model.Campaign{}
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// CreateCampaign handles POST /api/campaigns.
func (h *PromotionHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.CampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	campaign, err := h.promotions.CreateCampaign(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// UpdateCampaign handles PUT /api/campaigns/{id}.
func (h *PromotionHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
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

	var req model.CampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	campaign, err := h.promotions.UpdateCampaign(r.Context(), id, ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/campaigns/{id}.
func (h *PromotionHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
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

	if err := h.promotions.DeleteCampaign(r.Context(), id, ownerID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
