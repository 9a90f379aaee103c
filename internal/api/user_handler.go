package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vacancyhq/jobdesk-api/internal/api/middleware"
	"github.com/vacancyhq/jobdesk-api/internal/redact"
	"github.com/vacancyhq/jobdesk-api/internal/service"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		logger:      logger.With("component", "user_handler"),
	}
}

// Register handles POST /users: account registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Create(r.Context(), service.UserDraft{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		IsCompany: req.IsCompany,
	})
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to create user", "error", redact.Error(err))
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, user)
}

// List handles GET /users: public paginated listing.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParsePagination(r)

	users, err := h.userService.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list users", "error", redact.Error(err))
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, users)
}

// Update handles PATCH /users/{id}: self-service profile updates.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Update(r.Context(), userID, authUser.Email, service.UserUpdate{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to update user", "error", redact.Error(err), "user_id", userID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}
