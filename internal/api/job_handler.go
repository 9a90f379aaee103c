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

// JobHandler handles job posting API requests.
type JobHandler struct {
	jobService service.JobService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewJobHandler creates a new JobHandler with the given dependencies.
func NewJobHandler(jobService service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		validator:  validator.New(),
		logger:     logger.With("component", "job_handler"),
	}
}

// List handles GET /jobs: public paginated listing.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParsePagination(r)

	jobs, err := h.jobService.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list jobs", "error", redact.Error(err))
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, jobs)
}

// Get handles GET /jobs/{id}: public single-job read.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetByID(r.Context(), jobID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, job)
}

// Create handles POST /jobs: company users post a vacancy.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	job, err := h.jobService.Create(r.Context(), service.JobDraft{
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
	}, authUser)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to create job", "error", redact.Error(err), "owner_id", authUser.ID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, job)
}

// Delete handles DELETE /jobs/{id}: only the owning company may delete.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.GetAuthUser(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := h.jobService.Delete(r.Context(), jobID, authUser); err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			h.logger.Error("failed to delete job", "error", redact.Error(err), "job_id", jobID)
		}
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
