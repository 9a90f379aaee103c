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

// ResponseHandler handles job application API requests. All response
// endpoints require authentication.
type ResponseHandler struct {
	responseService service.ResponseService
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewResponseHandler creates a new ResponseHandler with the given dependencies.
func NewResponseHandler(responseService service.ResponseService, logger *slog.Logger) *ResponseHandler {
	return &ResponseHandler{
		responseService: responseService,
		validator:       validator.New(),
		logger:          logger.With("component", "response_handler"),
	}
}

// Create handles POST /responses: applicants submit an application.
func (h *ResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateResponseRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	response, err := h.responseService.Create(r.Context(), service.ResponseDraft{
		JobID:   req.JobID,
		Message: req.Message,
	}, authUser)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to create response", "error", redact.Error(err), "job_id", req.JobID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, response)
}

// ListMine handles GET /responses/my: the applicant's own responses joined
// with their target jobs.
func (h *ResponseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	responses, err := h.responseService.ListForUser(r.Context(), authUser)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to list user responses", "error", redact.Error(err))
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// ListCompany handles GET /responses/company: responses to jobs owned by the
// authenticated company, joined with applicant profiles.
func (h *ResponseHandler) ListCompany(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	responses, err := h.responseService.ListForCompany(r.Context(), authUser)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to list company responses", "error", redact.Error(err))
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// ListForJob handles GET /responses/job/{jobID}: all responses to one job.
func (h *ResponseHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid job ID")
		return
	}

	responses, err := h.responseService.ListForJob(r.Context(), jobID, authUser)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to list job responses", "error", redact.Error(err), "job_id", jobID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// Delete handles DELETE /responses/{id}.
func (h *ResponseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	responseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid response ID")
		return
	}

	if err := h.responseService.Delete(r.Context(), responseID, authUser); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to delete response", "error", redact.Error(err), "response_id", responseID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
