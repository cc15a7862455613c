package handler

import (
	"net/http"

	"chain-dashboard/internal/model"
	"chain-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// DatasetHandler exposes dataset configuration, regeneration and export.
type DatasetHandler struct {
	datasets service.DatasetService
	exports  service.ExportService
	logger   zerolog.Logger
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(datasets service.DatasetService, exports service.ExportService, logger zerolog.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasets: datasets,
		exports:  exports,
		logger:   logger.With().Str("handler", "dataset").Logger(),
	}
}

// Config handles GET /api/dataset/config requests.
func (h *DatasetHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.datasets.Config())
}

// Configure handles PUT /api/dataset/config requests. Out-of-range counts
// are clamped, never rejected.
func (h *DatasetHandler) Configure(w http.ResponseWriter, r *http.Request) {
	var req model.ConfigureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	cfg := h.datasets.Configure(r.Context(), req.UserCount, req.OrderCount)
	writeJSON(w, http.StatusOK, cfg)
}

// Refresh handles POST /api/dataset/refresh requests.
func (h *DatasetHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"generationId": ds.GenerationID,
		"generatedAt":  ds.GeneratedAt,
		"config":       ds.Config,
		"customers":    len(ds.Customers),
		"orders":       len(ds.Orders),
		"shops":        len(ds.Shops),
	})
}

// Export handles POST /api/dataset/export requests.
func (h *DatasetHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exports.ExportSnapshot(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Seed handles POST /api/dataset/seed requests.
func (h *DatasetHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.exports.SeedDatabase(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Shops handles GET /api/shops requests.
func (h *DatasetHandler) Shops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.datasets.Shops(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}
