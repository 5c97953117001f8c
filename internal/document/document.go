package document

import (
	"context"
	"io"
)

// Store persists uploaded document bytes keyed by an opaque storage key.
// Metadata lives in the database; only content goes through the store.
type Store interface {
	// Save writes the document content under the given key.
	Save(ctx context.Context, key string, data io.Reader) error

	// Open returns a reader for the document content.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
