package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vacancyhq/jobdesk-api/internal/api/shared"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/redact"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes. It validates the
// bearer access token and resolves its subject (the user's email) to a full
// identity through the user store, so handlers downstream always see a
// complete *domain.User.
type AuthMiddleware struct {
	tokenService auth.TokenService
	userStore    store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userStore:    userStore,
	}
}

// Authenticate validates JWT access tokens from the Authorization header and
// adds the resolved user to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), parts[1], auth.TokenTypeAccess)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// Valid signature but the subject no longer exists.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve token subject", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.AuthUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetAuthUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.AuthUserContextKey).(*domain.User)
	return user, ok
}
