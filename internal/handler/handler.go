package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// RequestIDHeader carries the correlation id set by the request-id middleware.
const RequestIDHeader = "X-Request-ID"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	correlationID := w.Header().Get(RequestIDHeader)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service error onto an HTTP error response.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, model.ErrCodeInternalError, "request cancelled or timed out", logger)
		return
	}

	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeInvalidQuery, model.ErrCodeInvalidJSON:
		status = http.StatusBadRequest
	case model.ErrCodeCustomerNotFound, model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeSeedingDisabled:
		status = http.StatusServiceUnavailable
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
