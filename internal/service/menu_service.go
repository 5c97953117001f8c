package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resto-board/internal/model"
	"resto-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// menuService implements MenuService. The QR code encodes the public menu
// URL and is rendered on demand from the stored slug.
type menuService struct {
	menus         repository.MenuRepository
	publicBaseURL string
	logger        zerolog.Logger
}

// NewMenuService creates a new menu settings service. publicBaseURL is the
// externally reachable origin the QR code points at.
func NewMenuService(menus repository.MenuRepository, publicBaseURL string, logger zerolog.Logger) MenuService {
	return &menuService{
		menus:         menus,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger.With().Str("service", "menu").Logger(),
	}
}

// GetSettings retrieves the owner's menu settings.
func (s *menuService) GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.MenuSettings, error) {
	settings, err := s.menus.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, model.ErrMenuNotConfigured
	}
	return settings, nil
}

// UpdateSettings creates or replaces the owner's menu settings.
func (s *menuService) UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *model.MenuSettingsRequest) (*model.MenuSettings, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(req.PublicSlug))
	if !slugPattern.MatchString(slug) {
		return nil, model.NewDomainError(model.ErrCodeValidation, "public slug must be lowercase letters, digits and hyphens")
	}

	theme := req.Theme
	if theme == "" {
		theme = "classic"
	}
	showPrices := true
	if req.ShowPrices != nil {
		showPrices = *req.ShowPrices
	}

	settings := &model.MenuSettings{
		RestaurantID: ownerID,
		PublicSlug:   slug,
		Theme:        theme,
		ShowPrices:   showPrices,
		UpdatedAt:    time.Now(),
	}
	if err := s.menus.UpsertSettings(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("restaurant_id", ownerID.String()).Str("slug", slug).Msg("menu settings updated")
	return settings, nil
}

// QRCode renders a PNG pointing at the public menu page. The menu must be
// configured first so the slug exists.
func (s *menuService) QRCode(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	settings, err := s.menus.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, model.ErrMenuNotConfigured
	}

	url := fmt.Sprintf("%s/menu/%s", s.publicBaseURL, settings.PublicSlug)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("failed to render menu QR code")
		return nil, fmt.Errorf("failed to render menu QR code: %w", err)
	}
	return png, nil
}
