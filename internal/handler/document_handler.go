package handler

import (
	"fmt"
	"io"
	"net/http"

	"resto-board/internal/model"
	"resto-board/internal/service"

	"github.com/rs/zerolog"
)

// maxDocumentSize caps multipart uploads at 10 MiB.
const maxDocumentSize = 10 << 20

// DocumentHandler serves legal document upload and retrieval.
type DocumentHandler struct {
	documents service.DocumentService
	logger    zerolog.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documents service.DocumentService, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		logger:    logger.With().Str("handler", "document").Logger(),
	}
}

// Upload handles POST /api/documents as a multipart form with a "file" part
// and a "kind" field.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		writeError(w, h.logger, model.NewDomainError(model.ErrCodeValidation, "Invalid or oversized multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, h.logger, model.NewDomainError(model.ErrCodeValidation, "Missing file part"))
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(r.Context(), ownerID, r.FormValue("kind"), header.Filename, file)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	documents, err := h.documents.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if documents == nil {
		documents = []model.Document{}
	}

	writeJSON(w, http.StatusOK, documents)
}

// Download handles GET /api/documents/{id}/content.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
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

	doc, rc, err := h.documents.Download(r.Context(), id, ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to stream document")
	}
}
