package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Store on the local file system.
type fileStore struct {
	baseDir string
	logger  zerolog.Logger
}

// NewFileStore creates a document store rooted at baseDir.
func NewFileStore(baseDir string, logger zerolog.Logger) Store {
	return &fileStore{
		baseDir: baseDir,
		logger:  logger.With().Str("component", "file-document-store").Logger(),
	}
}

// Save writes the document content to baseDir/key, creating parent
// directories as needed.
func (s *fileStore) Save(ctx context.Context, key string, data io.Reader) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file %s: %w", path, err)
	}
	defer f.Close()

	written, err := io.Copy(f, data)
	if err != nil {
		return fmt.Errorf("failed to write document file %s: %w", path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int64("bytes", written).
		Msg("document written to local file system")

	return nil
}

// Open returns a reader for the document at baseDir/key.
func (s *fileStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file %s: %w", path, err)
	}
	return f, nil
}
