package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-board/internal/auth"
	"resto-board/internal/config"
	"resto-board/internal/database"
	"resto-board/internal/document"
	"resto-board/internal/handler"
	"resto-board/internal/middleware"
	"resto-board/internal/repository"
	"resto-board/internal/router"
	"resto-board/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting resto-board API")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	docStore, err := buildDocumentStore(ctx, cfg.Documents, logger)
	if err != nil {
		return fmt.Errorf("failed to initialise document store: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	restaurantRepo := repository.NewRestaurantRepository(pool, logger)
	dishRepo := repository.NewDishRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)
	promotionRepo := repository.NewPromotionRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	documentRepo := repository.NewDocumentRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	statsRepo := repository.NewStatsRepository(pool, logger)

	authService := service.NewAuthService(restaurantRepo, tokens, logger)
	restaurantService := service.NewRestaurantService(restaurantRepo, logger)
	dishService := service.NewDishService(dishRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, logger)
	promotionService := service.NewPromotionService(promotionRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	documentService := service.NewDocumentService(documentRepo, docStore, logger)
	menuService := service.NewMenuService(menuRepo, cfg.Menu.PublicBaseURL, logger)
	statsService := service.NewStatsService(statsRepo, logger)

	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(pool, logger),
		Auth:       handler.NewAuthHandler(authService, logger),
		Restaurant: handler.NewRestaurantHandler(restaurantService, logger),
		Dish:       handler.NewDishHandler(dishService, logger),
		Order:      handler.NewOrderHandler(orderService, logger),
		Payment:    handler.NewPaymentHandler(paymentService, logger),
		Promotion:  handler.NewPromotionHandler(promotionService, logger),
		Review:     handler.NewReviewHandler(reviewService, logger),
		Document:   handler.NewDocumentHandler(documentService, logger),
		Menu:       handler.NewMenuHandler(menuService, logger),
		Stats:      handler.NewStatsHandler(statsService, logger),
	}

	rateLimiter := middleware.NewRateLimiter(20, 40, logger)

	srv := &http.Server{
		Addr: cfg.Server.Address(),
		Handler: router.New(handlers,
			middleware.Recovery(logger),
			middleware.Logging(logger),
			middleware.CORS(),
			rateLimiter.Middleware(),
			middleware.JWTAuth(tokens, logger, "/health", "/api/auth/"),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}

// buildDocumentStore wires the local file store, optionally fronted by S3.
func buildDocumentStore(ctx context.Context, cfg config.DocumentsConfig, logger zerolog.Logger) (document.Store, error) {
	fileStore := document.NewFileStore(cfg.LocalDir, logger)

	if !cfg.S3Enabled {
		return fileStore, nil
	}

	s3Store, err := document.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, logger)
	if err != nil {
		// A broken S3 setup should not block startup; uploads fall back to
		// the local directory until the bucket is reachable.
		logger.Warn().Err(err).Msg("S3 document store unavailable, using local storage only")
		return fileStore, nil
	}

	return document.NewFallbackStore(s3Store, fileStore, cfg.S3Prefix, true, logger), nil
}
