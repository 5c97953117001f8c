package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"resto-board/internal/middleware"
	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusForCode maps domain error codes to HTTP statuses.
var statusForCode = map[string]int{
	model.ErrCodeInvalidJSON:       http.StatusBadRequest,
	model.ErrCodeValidation:        http.StatusBadRequest,
	model.ErrCodeInvalidStatus:     http.StatusBadRequest,
	model.ErrCodeIllegalTransition: http.StatusUnprocessableEntity,
	model.ErrCodeStatusConflict:    http.StatusConflict,
	model.ErrCodeNotFound:          http.StatusNotFound,
	model.ErrCodeEmailTaken:        http.StatusConflict,
	model.ErrCodeBadCredentials:    http.StatusUnauthorized,
	model.ErrCodeUnauthorised:      http.StatusUnauthorized,
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError maps an error to its HTTP status and writes the error body.
// Unknown errors become opaque 500s; their detail stays in the log.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusForCode[domainErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: errorBody{Code: domainErr.Code, Message: domainErr.Message}})
		return
	}

	logger.Error().Err(err).Msg("unhandled error")
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorBody{Code: model.ErrCodeInternalError, Message: "Internal server error"},
	})
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Request body is not valid JSON")
	}
	return nil
}

// ownerFromRequest extracts the authenticated owner identity placed in the
// context by the auth middleware.
func ownerFromRequest(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		return uuid.Nil, model.NewDomainError(model.ErrCodeUnauthorised, "Missing owner identity")
	}
	return id, nil
}

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Invalid id in path")
	}
	return id, nil
}
