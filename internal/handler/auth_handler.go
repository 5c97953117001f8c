package handler

import (
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth   service.AuthService
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
