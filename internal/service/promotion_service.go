package service

import (
	"context"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// promotionService implements PromotionService.
type promotionService struct {
	promotions repository.PromotionRepository
	logger     zerolog.Logger
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(promotions repository.PromotionRepository, logger zerolog.Logger) PromotionService {
	return &promotionService{
		promotions: promotions,
		logger:     logger.With().Str("service", "promotion").Logger(),
	}
}

// ListPromotions retrieves the owner's promotions.
func (s *promotionService) ListPromotions(ctx context.Context, ownerID uuid.UUID) ([]model.Promotion, error) {
	return s.promotions.ListPromotions(ctx, ownerID)
}

// CreatePromotion adds a discount code. New promotions default to active.
func (s *promotionService) CreatePromotion(ctx context.Context, ownerID uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	promotion := &model.Promotion{
		ID:              uuid.New(),
		RestaurantID:    ownerID,
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          active,
	}
	if err := s.promotions.CreatePromotion(ctx, promotion); err != nil {
		return nil, err
	}

	s.logger.Info().Str("promotion_id", promotion.ID.String()).Str("code", promotion.Code).Msg("promotion created")
	return promotion, nil
}

// UpdatePromotion edits an owned promotion.
func (s *promotionService) UpdatePromotion(ctx context.Context, id, ownerID uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	promotion := &model.Promotion{
		ID:              id,
		RestaurantID:    ownerID,
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          active,
	}

	updated, err := s.promotions.UpdatePromotion(ctx, promotion)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.ErrPromotionNotFound
	}
	return promotion, nil
}

// DeletePromotion removes an owned promotion.
func (s *promotionService) DeletePromotion(ctx context.Context, id, ownerID uuid.UUID) error {
	deleted, err := s.promotions.DeletePromotion(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrPromotionNotFound
	}
	return nil
}

// ListCampaigns retrieves the owner's campaigns.
func (s *promotionService) ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]model.Campaign, error) {
	return s.promotions.ListCampaigns(ctx, ownerID)
}

// CreateCampaign adds a marketing campaign. New campaigns start as drafts
// unless the request names a status.
func (s *promotionService) CreateCampaign(ctx context.Context, ownerID uuid.UUID, req *model.CampaignRequest) (*model.Campaign, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.CampaignDraft
	}

	campaign := &model.Campaign{
		ID:           uuid.New(),
		RestaurantID: ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Status:       status,
	}
	if err := s.promotions.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info().Str("campaign_id", campaign.ID.String()).Msg("campaign created")
	return campaign, nil
}

// UpdateCampaign edits an owned campaign.
func (s *promotionService) UpdateCampaign(ctx context.Context, id, ownerID uuid.UUID, req *model.CampaignRequest) (*model.Campaign, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.CampaignDraft
	}

	campaign := &model.Campaign{
		ID:           id,
		RestaurantID: ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Status:       status,
	}

	updated, err := s.promotions.UpdateCampaign(ctx, campaign)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.ErrCampaignNotFound
	}
	return campaign, nil
}

// DeleteCampaign removes an owned campaign.
func (s *promotionService) DeleteCampaign(ctx context.Context, id, ownerID uuid.UUID) error {
	deleted, err := s.promotions.DeleteCampaign(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrCampaignNotFound
	}
	return nil
}
