//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resto-board/internal/auth"
	"resto-board/internal/document"
	"resto-board/internal/handler"
	"resto-board/internal/middleware"
	"resto-board/internal/model"
	"resto-board/internal/repository"
	"resto-board/internal/router"
	"resto-board/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the whole stack against the container database, the
// same way the real entrypoint does.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()

	tokens := auth.NewTokenManager("integration-secret", time.Hour)
	docStore := document.NewFileStore(t.TempDir(), logger)

	restaurantRepo := repository.NewRestaurantRepository(testPool, logger)
	orderRepo := repository.NewOrderRepository(testPool, logger)

	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(testPool, logger),
		Auth:       handler.NewAuthHandler(service.NewAuthService(restaurantRepo, tokens, logger), logger),
		Restaurant: handler.NewRestaurantHandler(service.NewRestaurantService(restaurantRepo, logger), logger),
		Dish:       handler.NewDishHandler(service.NewDishService(repository.NewDishRepository(testPool, logger), logger), logger),
		Order:      handler.NewOrderHandler(service.NewOrderService(orderRepo, logger), logger),
		Payment:    handler.NewPaymentHandler(service.NewPaymentService(repository.NewPaymentRepository(testPool, logger), logger), logger),
		Promotion:  handler.NewPromotionHandler(service.NewPromotionService(repository.NewPromotionRepository(testPool, logger), logger), logger),
		Review:     handler.NewReviewHandler(service.NewReviewService(repository.NewReviewRepository(testPool, logger), logger), logger),
		Document:   handler.NewDocumentHandler(service.NewDocumentService(repository.NewDocumentRepository(testPool, logger), docStore, logger), logger),
		Menu:       handler.NewMenuHandler(service.NewMenuService(repository.NewMenuRepository(testPool, logger), "http://localhost:8080", logger), logger),
		Stats:      handler.NewStatsHandler(service.NewStatsService(repository.NewStatsRepository(testPool, logger), logger), logger),
	}

	h := router.New(handlers,
		middleware.Recovery(logger),
		middleware.JWTAuth(tokens, logger, "/health", "/api/auth/"),
	)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestAPIOrderLifecycle(t *testing.T) {
	truncateAll(t)
	srv := newTestServer(t)

	// Register an owner through the API.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":    "owner@example.com",
		"password": "pass-word-1",
		"name":     "Trattoria",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var authResp model.AuthResponse
	require.NoError(t, json.Unmarshal(body, &authResp))
	token := authResp.Token
	ownerID := authResp.Restaurant.ID

	// Orders arrive through the external ordering flow; seed one directly.
	customerID := uuid.New()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO customers (id, name) VALUES ($1, 'Ada')
	`, customerID)
	require.NoError(t, err)

	orderID := uuid.New()
	_, err = testPool.Exec(context.Background(), `
		INSERT INTO orders (id, order_number, restaurant_id, customer_id, status, total)
		VALUES ($1, 'ORD-0001', $2, $3, 'PENDING', 25.00)
	`, orderID, ownerID, customerID)
	require.NoError(t, err)

	base := srv.URL + "/api/orders/" + orderID.String() + "/status"

	// PENDING -> CONFIRMED
	resp, body = doJSON(t, http.MethodPatch, base, token, map[string]string{"status": "CONFIRMED"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var view model.OrderView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, model.StatusConfirmed, view.Status)

	// Replaying the same transition is now illegal.
	resp, _ = doJSON(t, http.MethodPatch, base, token, map[string]string{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Unknown status is a 400.
	resp, _ = doJSON(t, http.MethodPatch, base, token, map[string]string{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// CONFIRMED -> PREPARING -> READY -> DELIVERED
	for _, next := range []string{"PREPARING", "READY", "DELIVERED"} {
		resp, body = doJSON(t, http.MethodPatch, base, token, map[string]string{"status": next})
		require.Equal(t, http.StatusOK, resp.StatusCode, "to %s: %s", next, string(body))
	}

	// DELIVERED is terminal.
	resp, _ = doJSON(t, http.MethodPatch, base, token, map[string]string{"status": "CANCELLED"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPIOwnershipBoundary(t *testing.T) {
	truncateAll(t)
	srv := newTestServer(t)

	register := func(email string) (string, uuid.UUID) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
			"email":    email,
			"password": "pass-word-1",
			"name":     "Resto",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
		var authResp model.AuthResponse
		require.NoError(t, json.Unmarshal(body, &authResp))
		return authResp.Token, authResp.Restaurant.ID
	}

	_, aliceID := register("alice@example.com")
	bobToken, _ := register("bob@example.com")

	customerID := uuid.New()
	_, err := testPool.Exec(context.Background(), `INSERT INTO customers (id, name) VALUES ($1, 'Ada')`, customerID)
	require.NoError(t, err)

	orderID := uuid.New()
	_, err = testPool.Exec(context.Background(), `
		INSERT INTO orders (id, order_number, restaurant_id, customer_id, status, total)
		VALUES ($1, 'ORD-0002', $2, $3, 'PENDING', 10.00)
	`, orderID, aliceID, customerID)
	require.NoError(t, err)

	// Bob can neither read nor transition Alice's order, and the response is
	// indistinguishable from a missing order.
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/orders/"+orderID.String(), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/api/orders/"+orderID.String()+"/status", bobToken,
		map[string]string{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/orders/%s", srv.URL, uuid.New()), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIUnauthenticated(t *testing.T) {
	truncateAll(t)
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/orders")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
