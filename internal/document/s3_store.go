package document

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Store implements Store against an AWS S3 bucket.
type s3Store struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Store creates a new S3-backed document store.
func NewS3Store(ctx context.Context, bucket, region string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "s3-document-store").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 document store initialised")

	return &s3Store{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Save uploads the document content to the bucket under the given key.
func (s *s3Store) Save(ctx context.Context, key string, data io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   data,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("document uploaded to S3")

	return nil
}

// Open downloads the document content from the bucket.
func (s *s3Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}
	return result.Body, nil
}

// fallbackStore tries S3 first and falls back to the local file system, so a
// misconfigured bucket never blocks a compliance upload. Reads try S3 then
// local too, since older documents may predate S3 being enabled.
type fallbackStore struct {
	s3Store   Store
	fileStore Store
	s3Prefix  string
	s3Enabled bool
	logger    zerolog.Logger
}

// NewFallbackStore creates a store that prefers S3 and falls back to the
// local file system. If s3Store is nil, only the file store is used.
func NewFallbackStore(s3Store, fileStore Store, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Store {
	return &fallbackStore{
		s3Store:   s3Store,
		fileStore: fileStore,
		s3Prefix:  s3Prefix,
		s3Enabled: s3Enabled,
		logger:    logger.With().Str("component", "fallback-document-store").Logger(),
	}
}

// Save attempts the S3 store first, then the local file system.
func (s *fallbackStore) Save(ctx context.Context, key string, data io.Reader) error {
	if s.s3Enabled && s.s3Store != nil {
		s3Key := s.s3Prefix + key
		err := s.s3Store.Save(ctx, s3Key, data)
		if err == nil {
			return nil
		}
		s.logger.Warn().
			Err(err).
			Str("s3_key", s3Key).
			Msg("failed to save document to S3, falling back to local file system")

		// The reader may be partially consumed after a failed upload; a
		// seekable reader is required to retry locally.
		seeker, ok := data.(io.Seeker)
		if !ok {
			return fmt.Errorf("failed to save document to S3: %w", err)
		}
		if _, seekErr := seeker.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to rewind document after S3 failure: %w", seekErr)
		}
	}

	return s.fileStore.Save(ctx, key, data)
}

// Open attempts the S3 store first, then the local file system.
func (s *fallbackStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.s3Enabled && s.s3Store != nil {
		if rc, err := s.s3Store.Open(ctx, s.s3Prefix+key); err == nil {
			return rc, nil
		}
	}
	return s.fileStore.Open(ctx, key)
}
