package handler

import (
	"net/http"

	"chain-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler serves aggregate statistics.
type DashboardHandler struct {
	dashboard service.DashboardService
	query     queryParser
	logger    zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	logger = logger.With().Str("handler", "dashboard").Logger()
	return &DashboardHandler{
		dashboard: dashboard,
		query:     queryParser{logger: logger},
		logger:    logger,
	}
}

// Summary handles GET /api/dashboard requests.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// UserStats handles GET /api/stats/users requests.
func (h *DashboardHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.UserStats(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// OrderStats handles GET /api/stats/orders requests.
func (h *DashboardHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.OrderStats(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Trend handles GET /api/stats/trend?metric=&days= requests.
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	days, err := h.query.intParam(r, "days", 30)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = service.MetricOrders
	}

	points, err := h.dashboard.Trend(r.Context(), metric, days)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// Services handles GET /api/stats/services?limit= requests.
func (h *DashboardHandler) Services(w http.ResponseWriter, r *http.Request) {
	limit, err := h.query.intParam(r, "limit", 5)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	services, err := h.dashboard.TopServices(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, services)
}
