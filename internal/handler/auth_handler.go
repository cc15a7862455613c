package handler

import (
	"net/http"

	"chain-dashboard/internal/auth"
	"chain-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler handles operator login.
type AuthHandler struct {
	auth   auth.Authenticator
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authenticator auth.Authenticator, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   authenticator,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "username and password are required", h.logger)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// Me handles GET /api/auth/me requests. API-key callers carry no claims.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "no operator session", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, claims.Operator())
}
