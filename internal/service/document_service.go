package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"resto-board/internal/document"
	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// documentService implements DocumentService. Bytes go through the document
// store, metadata through the repository. The storage key is opaque to
// callers and never derived from user input alone.
type documentService struct {
	documents repository.DocumentRepository
	store     document.Store
	logger    zerolog.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(documents repository.DocumentRepository, store document.Store, logger zerolog.Logger) DocumentService {
	return &documentService{
		documents: documents,
		store:     store,
		logger:    logger.With().Str("service", "document").Logger(),
	}
}

// Upload stores the file bytes and records the metadata row. The metadata is
// written only after the bytes are safely stored.
func (s *documentService) Upload(ctx context.Context, ownerID uuid.UUID, kind, fileName string, data io.Reader) (*model.Document, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "document kind is required")
	}

	// Strip any path components a client may have smuggled into the name.
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, model.NewDomainError(model.ErrCodeValidation, "document file name is required")
	}

	id := uuid.New()
	key := fmt.Sprintf("%s/%s-%s", ownerID, id, fileName)

	if err := s.store.Save(ctx, key, data); err != nil {
		return nil, err
	}

	doc := &model.Document{
		ID:           id,
		RestaurantID: ownerID,
		Kind:         kind,
		FileName:     fileName,
		StorageKey:   key,
		UploadedAt:   time.Now(),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("document_id", doc.ID.String()).
		Str("kind", doc.Kind).
		Msg("document uploaded")
	return doc, nil
}

// List retrieves the owner's document metadata.
func (s *documentService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Document, error) {
	return s.documents.ListByOwner(ctx, ownerID)
}

// Download returns the metadata and an open reader for the file bytes.
func (s *documentService) Download(ctx context.Context, id, ownerID uuid.UUID) (*model.Document, io.ReadCloser, error) {
	doc, err := s.documents.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, model.NewDomainError(model.ErrCodeNotFound, "Document not found")
	}

	rc, err := s.store.Open(ctx, doc.StorageKey)
	if err != nil {
		s.logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to open stored document")
		return nil, nil, err
	}
	return doc, rc, nil
}
