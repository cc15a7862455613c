package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chain-dashboard/internal/auth"
	"chain-dashboard/internal/handler"
	"chain-dashboard/internal/middleware"
	"chain-dashboard/internal/mockdata"
	"chain-dashboard/internal/model"
	"chain-dashboard/internal/service"
	"chain-dashboard/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAPIKey = "router-test-key"

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) (http.Handler, service.DatasetService) {
	t.Helper()
	logger := zerolog.Nop()
	ctx := context.Background()

	builder, err := mockdata.NewBuilder(42, mockdata.DefaultFactoryOptions(), time.UTC, logger)
	require.NoError(t, err)

	datasets, err := service.NewDatasetService(ctx, builder, model.GenerationConfig{UserCount: 100, OrderCount: 100}, 0, logger)
	require.NoError(t, err)

	dashboard := service.NewDashboardService(datasets, 0, time.UTC, logger)
	exports := service.NewExportService(datasets, snapshot.NewFileStore(t.TempDir(), logger), nil, logger)

	authenticator, err := auth.NewAuthenticator("router-secret", time.Hour, auth.DefaultCredentials(), bcrypt.MinCost, logger)
	require.NoError(t, err)

	validate := model.NewValidator()
	h := Handlers{
		Auth:      handler.NewAuthHandler(authenticator, logger),
		Dashboard: handler.NewDashboardHandler(dashboard, logger),
		Customer:  handler.NewCustomerHandler(datasets, dashboard, validate, time.UTC, logger),
		Order:     handler.NewOrderHandler(datasets, validate, time.UTC, logger),
		Dataset:   handler.NewDatasetHandler(datasets, exports, logger),
		SSE:       handler.NewSSEHandler(dashboard, time.Second, logger),
	}

	return New(h, Options{APIKey: testAPIKey, Authenticator: authenticator, RateLimiter: limiter}, logger), datasets
}

func do(t *testing.T, h http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var withKey = map[string]string{"X-API-Key": testAPIKey}

func TestRouter_Routes(t *testing.T) {
	h, datasets := newTestRouter(t, nil)
	ds := datasets.Snapshot()

	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "Health is public", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "Metrics are public", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Dashboard requires auth", method: http.MethodGet, path: "/api/dashboard", expectedStatus: http.StatusUnauthorized},
		{name: "Dashboard", method: http.MethodGet, path: "/api/dashboard", headers: withKey, expectedStatus: http.StatusOK},
		{name: "User stats", method: http.MethodGet, path: "/api/stats/users", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Order stats", method: http.MethodGet, path: "/api/stats/orders", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Trend", method: http.MethodGet, path: "/api/stats/trend?metric=revenue&days=7", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Unknown trend metric", method: http.MethodGet, path: "/api/stats/trend?metric=visits", headers: withKey, expectedStatus: http.StatusBadRequest},
		{name: "Services", method: http.MethodGet, path: "/api/stats/services", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Customers", method: http.MethodGet, path: "/api/customers?sortBy=totalSpent", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Top customers", method: http.MethodGet, path: "/api/customers/top?by=loyalty", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Customer by id", method: http.MethodGet, path: "/api/customers/" + ds.Customers[0].ID, headers: withKey, expectedStatus: http.StatusOK},
		{name: "Unknown customer", method: http.MethodGet, path: "/api/customers/nobody", headers: withKey, expectedStatus: http.StatusNotFound},
		{name: "Orders", method: http.MethodGet, path: "/api/orders?status=completed", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Order by id", method: http.MethodGet, path: "/api/orders/" + ds.Orders[0].ID, headers: withKey, expectedStatus: http.StatusOK},
		{name: "Shops", method: http.MethodGet, path: "/api/shops", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Dataset config", method: http.MethodGet, path: "/api/dataset/config", headers: withKey, expectedStatus: http.StatusOK},
		{name: "Seeding without database", method: http.MethodPost, path: "/api/dataset/seed", headers: withKey, expectedStatus: http.StatusServiceUnavailable},
		{name: "Export", method: http.MethodPost, path: "/api/dataset/export", headers: withKey, expectedStatus: http.StatusCreated},
		{name: "Wrong method", method: http.MethodDelete, path: "/api/dashboard", headers: withKey, expectedStatus: http.StatusMethodNotAllowed},
		{name: "Unknown route", method: http.MethodGet, path: "/api/products", headers: withKey, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, nil, tt.headers)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_LoginThenMe(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	body, err := json.Marshal(handler.LoginRequest{Username: "manager", Password: "manager123"})
	require.NoError(t, err)

	w := do(t, h, http.MethodPost, "/api/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var token auth.Token
	require.NoError(t, json.NewDecoder(w.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)

	w = do(t, h, http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer " + token.AccessToken})
	require.Equal(t, http.StatusOK, w.Code)

	var operator auth.Operator
	require.NoError(t, json.NewDecoder(w.Body).Decode(&operator))
	assert.Equal(t, "manager", operator.Username)
	assert.Equal(t, auth.RoleManager, operator.Role)

	w = do(t, h, http.MethodPost, "/api/auth/login", []byte(`{"username":"manager","password":"guess"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_ConfigureThenRefresh(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(t, h, http.MethodPut, "/api/dataset/config", []byte(`{"userCount":100,"orderCount":50}`), withKey)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg model.GenerationConfig
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cfg))
	assert.Equal(t, model.GenerationConfig{UserCount: 100, OrderCount: model.MinOrderCount}, cfg)

	w = do(t, h, http.MethodPost, "/api/dataset/refresh", nil, withKey)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/stats/users", nil, withKey)
	require.Equal(t, http.StatusOK, w.Code)
	var users model.UserStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&users))
	assert.Equal(t, 100, users.TotalUsers)

	w = do(t, h, http.MethodGet, "/api/stats/orders", nil, withKey)
	require.Equal(t, http.StatusOK, w.Code)
	var orders model.OrderStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	assert.Equal(t, model.MinOrderCount, orders.TotalOrders)
}

func TestRouter_CustomerTopIsNotAnID(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(t, h, http.MethodGet, "/api/customers/top?limit=3", nil, withKey)
	require.Equal(t, http.StatusOK, w.Code)

	var customers []model.Customer
	require.NoError(t, json.NewDecoder(w.Body).Decode(&customers))
	assert.Len(t, customers, 3)
}

func TestRouter_RateLimit(t *testing.T) {
	h, _ := newTestRouter(t, middleware.NewRateLimiter(0.001, 2))

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/health", nil, nil).Code)
}

func TestRouter_Preflight(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(t, h, http.MethodOptions, "/api/dashboard", nil, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
