package router

import (
	"net/http"

	"chain-dashboard/internal/auth"
	"chain-dashboard/internal/handler"
	"chain-dashboard/internal/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Dataset   *handler.DatasetHandler
	SSE       *handler.SSEHandler
}

// Options configures the middleware chain.
type Options struct {
	APIKey        string
	Authenticator auth.Authenticator
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Summary)
	mux.HandleFunc("GET /api/stats/users", h.Dashboard.UserStats)
	mux.HandleFunc("GET /api/stats/orders", h.Dashboard.OrderStats)
	mux.HandleFunc("GET /api/stats/trend", h.Dashboard.Trend)
	mux.HandleFunc("GET /api/stats/services", h.Dashboard.Services)

	mux.HandleFunc("GET /api/customers", h.Customer.List)
	mux.HandleFunc("GET /api/customers/top", h.Customer.Top)
	mux.HandleFunc("GET /api/customers/{id}", h.Customer.Get)

	mux.HandleFunc("GET /api/orders", h.Order.List)
	mux.HandleFunc("GET /api/orders/{id}", h.Order.Get)

	mux.HandleFunc("GET /api/shops", h.Dataset.Shops)
	mux.HandleFunc("GET /api/dataset/config", h.Dataset.Config)
	mux.HandleFunc("PUT /api/dataset/config", h.Dataset.Configure)
	mux.HandleFunc("POST /api/dataset/refresh", h.Dataset.Refresh)
	mux.HandleFunc("POST /api/dataset/export", h.Dataset.Export)
	mux.HandleFunc("POST /api/dataset/seed", h.Dataset.Seed)

	mux.HandleFunc("GET /sse/dashboard", h.SSE.Dashboard)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> RateLimit -> Auth -> Metrics
	var handler http.Handler = mux
	handler = middleware.Metrics(handler)
	handler = middleware.Auth(opts.Authenticator, opts.APIKey, logger)(handler)
	if opts.RateLimiter != nil {
		handler = middleware.RateLimit(opts.RateLimiter, logger)(handler)
	}
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
