package service

import (
	"context"
	"io"

	"resto-board/internal/model"

	"github.com/google/uuid"
)

// AuthService handles owner registration and login.
type AuthService interface {
	// Register creates a new owner account and returns a session token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and returns a session token. Unknown email
	// and wrong password produce the same error.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

// RestaurantService manages the owner's profile.
type RestaurantService interface {
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, req *model.UpdateProfileRequest) (*model.Restaurant, error)
}

// DishService manages menu categories and dishes for one owner.
type DishService interface {
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error)
	CreateCategory(ctx context.Context, ownerID uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) error

	ListDishes(ctx context.Context, ownerID uuid.UUID) ([]model.Dish, error)
	GetDish(ctx context.Context, id, ownerID uuid.UUID) (*model.Dish, error)
	CreateDish(ctx context.Context, ownerID uuid.UUID, req *model.DishRequest) (*model.Dish, error)
	UpdateDish(ctx context.Context, id, ownerID uuid.UUID, req *model.DishRequest) (*model.Dish, error)
	DeleteDish(ctx context.Context, id, ownerID uuid.UUID) error
}

// OrderService exposes the owner's order book and the status transition.
type OrderService interface {
	// List retrieves all of the owner's orders, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.OrderView, error)

	// Get retrieves one owned order.
	Get(ctx context.Context, id, ownerID uuid.UUID) (*model.OrderView, error)

	// Transition moves an order to the requested status. The raw status is
	// validated, checked against the legal-transition table, then applied
	// with a conditional write so concurrent transitions cannot both win.
	Transition(ctx context.Context, id, ownerID uuid.UUID, rawStatus string) (*model.OrderView, error)

	// Recent retrieves the latest orders for the dashboard tile.
	Recent(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.OrderSummary, error)
}

// PaymentService lists payments with computed commission figures.
type PaymentService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.PaymentView, error)
}

// PromotionService manages promotions and marketing campaigns.
type PromotionService interface {
	ListPromotions(ctx context.Context, ownerID uuid.UUID) ([]model.Promotion, error)
	CreatePromotion(ctx context.Context, ownerID uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error)
	UpdatePromotion(ctx context.Context, id, ownerID uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, id, ownerID uuid.UUID) error

	ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]model.Campaign, error)
	CreateCampaign(ctx context.Context, ownerID uuid.UUID, req *model.CampaignRequest) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, id, ownerID uuid.UUID, req *model.CampaignRequest) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, id, ownerID uuid.UUID) error
}

// ReviewService lists reviews and publishes restaurant replies.
type ReviewService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Review, error)
	Respond(ctx context.Context, id, ownerID uuid.UUID, req *model.RespondRequest) (*model.Review, error)
}

// DocumentService stores and retrieves uploaded legal documents.
type DocumentService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, kind, fileName string, data io.Reader) (*model.Document, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Document, error)

	// Download returns the metadata and an open reader for the file bytes.
	// The caller must close the reader.
	Download(ctx context.Context, id, ownerID uuid.UUID) (*model.Document, io.ReadCloser, error)
}

// MenuService manages the public menu settings and its QR code.
type MenuService interface {
	GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.MenuSettings, error)
	UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *model.MenuSettingsRequest) (*model.MenuSettings, error)

	// QRCode renders a PNG encoding the public menu URL.
	QRCode(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
}

// StatsService computes the owner's dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*model.DashboardStats, error)
}
