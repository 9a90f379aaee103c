package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vacancyhq/jobdesk-api/internal/redact"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	tokenService auth.TokenService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokenService auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		validator:    validator.New(),
		logger:       logger.With("component", "auth_handler"),
	}
}

// Login handles the /auth/login endpoint. On success it returns a fresh
// access/refresh token pair. Unknown emails and wrong passwords both map to
// 401 so the endpoint does not reveal which accounts exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	pair, err := h.tokenService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("login failed", "error", redact.Error(err))
			RespondWithError(w, r, status, "Failed to authenticate user")
			return
		}
		// Not-found and wrong-credentials collapse into one message.
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, pair)
}

// RefreshToken handles the /auth/refresh endpoint: a valid refresh token is
// exchanged for a brand-new access/refresh pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	pair, err := h.tokenService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("token refresh failed", "error", redact.Error(err))
			RespondWithError(w, r, status, "Failed to refresh token")
			return
		}
		// A refresh token whose subject disappeared is still just invalid.
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, pair)
}
