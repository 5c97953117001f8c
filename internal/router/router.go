package router

import (
	"net/http"

	"resto-board/internal/handler"
	"resto-board/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Restaurant *handler.RestaurantHandler
	Dish       *handler.DishHandler
	Order      *handler.OrderHandler
	Payment    *handler.PaymentHandler
	Promotion  *handler.PromotionHandler
	Review     *handler.ReviewHandler
	Document   *handler.DocumentHandler
	Menu       *handler.MenuHandler
	Stats      *handler.StatsHandler
}

// New builds the HTTP routing table and wraps it with the middleware chain.
// Everything under /api except /api/auth requires a session token.
func New(h Handlers, middlewares ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/profile", h.Restaurant.GetProfile)
	mux.HandleFunc("PUT /api/profile", h.Restaurant.UpdateProfile)

	mux.HandleFunc("GET /api/categories", h.Dish.ListCategories)
	mux.HandleFunc("POST /api/categories", h.Dish.CreateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Dish.DeleteCategory)

	mux.HandleFunc("GET /api/dishes", h.Dish.ListDishes)
	mux.HandleFunc("POST /api/dishes", h.Dish.CreateDish)
	mux.HandleFunc("GET /api/dishes/{id}", h.Dish.GetDish)
	mux.HandleFunc("PUT /api/dishes/{id}", h.Dish.UpdateDish)
	mux.HandleFunc("DELETE /api/dishes/{id}", h.Dish.DeleteDish)

	mux.HandleFunc("GET /api/orders", h.Order.List)
	mux.HandleFunc("GET /api/orders/recent", h.Order.Recent)
	mux.HandleFunc("GET /api/orders/{id}", h.Order.Get)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.Order.Transition)

	mux.HandleFunc("GET /api/payments", h.Payment.List)

	mux.HandleFunc("GET /api/promotions", h.Promotion.ListPromotions)
	mux.HandleFunc("POST /api/promotions", h.Promotion.CreatePromotion)
	mux.HandleFunc("PUT /api/promotions/{id}", h.Promotion.UpdatePromotion)
	mux.HandleFunc("DELETE /api/promotions/{id}", h.Promotion.DeletePromotion)

	mux.HandleFunc("GET /api/campaigns", h.Promotion.ListCampaigns)
	mux.HandleFunc("POST /api/campaigns", h.Promotion.CreateCampaign)
	mux.HandleFunc("PUT /api/campaigns/{id}", h.Promotion.UpdateCampaign)
	mux.HandleFunc("DELETE /api/campaigns/{id}", h.Promotion.DeleteCampaign)

	mux.HandleFunc("GET /api/reviews", h.Review.List)
	mux.HandleFunc("POST /api/reviews/{id}/response", h.Review.Respond)

	mux.HandleFunc("GET /api/documents", h.Document.List)
	mux.HandleFunc("POST /api/documents", h.Document.Upload)
	mux.HandleFunc("GET /api/documents/{id}/content", h.Document.Download)

	mux.HandleFunc("GET /api/menu/settings", h.Menu.GetSettings)
	mux.HandleFunc("PUT /api/menu/settings", h.Menu.UpdateSettings)
	mux.HandleFunc("GET /api/menu/qr", h.Menu.QRCode)

	mux.HandleFunc("GET /api/stats/dashboard", h.Stats.Dashboard)

	return middleware.Chain(mux, middlewares...)
}
