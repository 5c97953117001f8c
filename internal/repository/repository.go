package repository

import (
	"context"

	"resto-board/internal/model"

	"github.com/google/uuid"
)

// RestaurantRepository defines data access for owner accounts.
type RestaurantRepository interface {
	// Create inserts a new owner account.
	Create(ctx context.Context, r *model.Restaurant) error

	// GetByEmail retrieves an account by email, or nil if absent.
	GetByEmail(ctx context.Context, email string) (*model.Restaurant, error)

	// GetByID retrieves an account by id, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)

	// Update persists profile fields of an existing account.
	Update(ctx context.Context, r *model.Restaurant) error
}

// DishRepository defines data access for categories and dishes, always
// scoped to the owning restaurant.
type DishRepository interface {
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) (bool, error)

	List(ctx context.Context, ownerID uuid.UUID) ([]model.Dish, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Dish, error)
	Create(ctx context.Context, d *model.Dish) error
	Update(ctx context.Context, d *model.Dish) (bool, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

// OrderRepository defines data access for orders. There is no create or
// delete: orders arrive through the external ordering flow and are only
// listed and transitioned here.
type OrderRepository interface {
	// ListByOwner retrieves all orders owned by the caller, joined with
	// customer display fields and line items, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Order, error)

	// GetByID retrieves one order scoped by (id, owner), or nil if the order
	// does not exist or belongs to another restaurant.
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Order, error)

	// UpdateStatus performs the conditional single-row transition write:
	// the status is set to next only if the row still matches
	// (id, owner, current). Returns nil when zero rows were affected.
	UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, current, next model.OrderStatus) (*model.Order, error)

	// ListRecent retrieves the latest orders with their first line item.
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.OrderSummary, error)
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Payment, error)
}

// PromotionRepository defines data access for promotions and campaigns.
type PromotionRepository interface {
	ListPromotions(ctx context.Context, ownerID uuid.UUID) ([]model.Promotion, error)
	CreatePromotion(ctx context.Context, p *model.Promotion) error
	UpdatePromotion(ctx context.Context, p *model.Promotion) (bool, error)
	DeletePromotion(ctx context.Context, id, ownerID uuid.UUID) (bool, error)

	ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]model.Campaign, error)
	CreateCampaign(ctx context.Context, c *model.Campaign) error
	UpdateCampaign(ctx context.Context, c *model.Campaign) (bool, error)
	DeleteCampaign(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

// ReviewRepository defines data access for customer reviews.
type ReviewRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Review, error)

	// Respond stores the restaurant reply in the dedicated response column
	// and stamps responded_at. The original comment is never touched.
	// Returns nil when the review does not exist or is not owned.
	Respond(ctx context.Context, id, ownerID uuid.UUID, response string) (*model.Review, error)
}

// DocumentRepository defines data access for legal-document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Document, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Document, error)
}

// MenuRepository defines data access for public menu settings.
type MenuRepository interface {
	GetSettings(ctx context.Context, ownerID uuid.UUID) (*model.MenuSettings, error)
	UpsertSettings(ctx context.Context, s *model.MenuSettings) error
}

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*model.DashboardStats, error)
}
