package repository

import (
	"context"
	"errors"
	"fmt"

	"resto-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// documentRepository implements DocumentRepository using PostgreSQL. Only
// metadata lives here; the file bytes go through the document store.
type documentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDocumentRepository creates a new PostgreSQL-backed document repository.
func NewDocumentRepository(pool *pgxpool.Pool, logger zerolog.Logger) DocumentRepository {
	return &documentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "document").Logger(),
	}
}

// Create inserts metadata for an uploaded document.
func (r *documentRepository) Create(ctx context.Context, d *model.Document) error {
	query := `
		INSERT INTO documents (id, restaurant_id, kind, file_name, storage_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, d.ID, d.RestaurantID, d.Kind, d.FileName, d.StorageKey, d.UploadedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("document_id", d.ID.String()).Msg("failed to create document")
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ListByOwner retrieves the owner's document metadata, newest upload first.
func (r *documentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Document, error) {
	query := `
		SELECT id, restaurant_id, kind, file_name, storage_key, uploaded_at
		FROM documents
		WHERE restaurant_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		var d model.Document
		err := rows.Scan(&d.ID, &d.RestaurantID, &d.Kind, &d.FileName, &d.StorageKey, &d.UploadedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan document row")
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return documents, nil
}

// GetByID retrieves one document scoped by (id, owner), or nil if absent.
func (r *documentRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Document, error) {
	query := `
		SELECT id, restaurant_id, kind, file_name, storage_key, uploaded_at
		FROM documents
		WHERE id = $1 AND restaurant_id = $2
	`

	var d model.Document
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&d.ID, &d.RestaurantID, &d.Kind, &d.FileName, &d.StorageKey, &d.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("document_id", id.String()).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return &d, nil
}
