package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler serves public menu settings and the QR code.
type MenuHandler struct {
	menus  service.MenuService
	logger zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menus service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		menus:  menus,
		logger: logger.With().Str("handler", "menu").Logger(),
	}
}

// GetSettings handles GET /api/menu/settings.
func (h *MenuHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	settings, err := h.menus.GetSettings(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/menu/settings.
func (h *MenuHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req model.MenuSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	settings, err := h.menus.UpdateSettings(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// QRCode handles GET /api/menu/qr and responds with a PNG.
func (h *MenuHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	png, err := h.menus.QRCode(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
