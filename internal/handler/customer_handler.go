package handler

import (
	"net/http"
	"time"

	"chain-dashboard/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	datasets  service.DatasetService
	dashboard service.DashboardService
	query     queryParser
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler. Date-only filters are
// interpreted in loc.
func NewCustomerHandler(
	datasets service.DatasetService,
	dashboard service.DashboardService,
	validate *validator.Validate,
	loc *time.Location,
	logger zerolog.Logger,
) *CustomerHandler {
	logger = logger.With().Str("handler", "customer").Logger()
	return &CustomerHandler{
		datasets:  datasets,
		dashboard: dashboard,
		query:     queryParser{validate: validate, location: loc, logger: logger},
		logger:    logger,
	}
}

// List handles GET /api/customers requests.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := h.query.customerQuery(r)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	list, err := h.datasets.ListCustomers(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/customers/{id} requests.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.datasets.Customer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Top handles GET /api/customers/top requests.
func (h *CustomerHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, err := h.query.intParam(r, "limit", 10)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	by := r.URL.Query().Get("by")
	if by == "" {
		by = service.RankBySpend
	}

	customers, err := h.dashboard.TopCustomers(r.Context(), by, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}
