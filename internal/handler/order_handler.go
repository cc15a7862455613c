package handler

import (
	"net/http"
	"time"

	"chain-dashboard/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	datasets service.DatasetService
	query    queryParser
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(datasets service.DatasetService, validate *validator.Validate, loc *time.Location, logger zerolog.Logger) *OrderHandler {
	logger = logger.With().Str("handler", "order").Logger()
	return &OrderHandler{
		datasets: datasets,
		query:    queryParser{validate: validate, location: loc, logger: logger},
		logger:   logger,
	}
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := h.query.orderQuery(r)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	list, err := h.datasets.ListOrders(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/orders/{id} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.datasets.Order(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
