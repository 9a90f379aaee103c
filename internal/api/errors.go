package api

import (
	"errors"
	"net/http"

	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/service"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors. A wrong token type is deliberately reported the
	// same way as an invalid token.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrWrongCredentials):
		return "Invalid credentials"

	case errors.Is(err, service.ErrUpdateOtherUser):
		return "Users can only update their own profile"

	case errors.Is(err, service.ErrOnlyCompanyCanCreateJob):
		return "Only company users can create jobs"

	case errors.Is(err, service.ErrOnlyJobOwnerCanDeleteJob):
		return "Only the job owner can delete a job"

	case errors.Is(err, service.ErrOnlyApplicantCanRespond):
		return "Only applicant users can respond to jobs"

	case errors.Is(err, service.ErrOnlyApplicantResponses):
		return "Only applicant users can list their responses"

	case errors.Is(err, service.ErrOnlyCompanyResponses):
		return "Only company users can list responses to their jobs"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrDuplicateResponse):
		return "You have already responded to this job"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrJobNotFound):
		return "Job not found"

	case errors.Is(err, store.ErrResponseNotFound):
		return "Response not found"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError maps a service/store error to its status code and
// safe message and writes the error response. Handlers use this for every
// error that crosses the service boundary.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
