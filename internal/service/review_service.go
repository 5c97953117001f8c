package service

import (
	"context"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviews repository.ReviewRepository
	logger  zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		logger:  logger.With().Str("service", "review").Logger(),
	}
}

// List retrieves the owner's reviews, newest first.
func (s *reviewService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Review, error) {
	return s.reviews.ListByOwner(ctx, ownerID)
}

// Respond publishes a reply to a review. The reply goes into its own field;
// the customer's comment is never modified.
func (s *reviewService) Respond(ctx context.Context, id, ownerID uuid.UUID, req *model.RespondRequest) (*model.Review, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	review, err := s.reviews.Respond(ctx, id, ownerID, req.Response)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}

	s.logger.Info().Str("review_id", id.String()).Msg("review response published")
	return review, nil
}
