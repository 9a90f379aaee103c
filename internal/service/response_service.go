package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// ResponseDraft carries the caller-supplied fields for a new application.
type ResponseDraft struct {
	JobID   uuid.UUID
	Message string
}

// ResponseService provides job application lifecycle operations with
// cross-entity authorization rules.
type ResponseService interface {
	// Create submits an application to a job as authUser. Only applicant
	// accounts may respond; company accounts get ErrOnlyApplicantCanRespond.
	// A second application to the same job fails with
	// store.ErrDuplicateResponse.
	Create(ctx context.Context, draft ResponseDraft, authUser *domain.User) (*domain.Response, error)

	// ListForUser returns the authenticated applicant's responses, each
	// joined with its target job. Company accounts get
	// ErrOnlyApplicantResponses.
	ListForUser(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithJob, error)

	// ListForCompany returns responses to jobs owned by the authenticated
	// company, each joined with the applicant's profile. Applicant accounts
	// get ErrOnlyCompanyResponses.
	ListForCompany(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithUser, error)

	// ListForJob returns all responses to the given job joined with
	// applicant profiles. Any authenticated user may call this; there is no
	// ownership check on the job.
	ListForJob(ctx context.Context, jobID uuid.UUID, authUser *domain.User) ([]domain.ResponseWithUser, error)

	// Delete removes a response by ID. Returns store.ErrResponseNotFound if
	// absent. Any authenticated user may call this; there is no ownership
	// check on the response.
	Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error
}

// ResponseServiceImpl implements the ResponseService interface.
type ResponseServiceImpl struct {
	responseStore store.ResponseStore
	logger        *slog.Logger
}

// Ensure ResponseServiceImpl implements ResponseService
var _ ResponseService = (*ResponseServiceImpl)(nil)

// NewResponseService creates a new ResponseService.
func NewResponseService(responseStore store.ResponseStore, logger *slog.Logger) *ResponseServiceImpl {
	return &ResponseServiceImpl{
		responseStore: responseStore,
		logger:        logger.With("component", "response_service"),
	}
}

// Create implements ResponseService.Create
func (s *ResponseServiceImpl) Create(
	ctx context.Context,
	draft ResponseDraft,
	authUser *domain.User,
) (*domain.Response, error) {
	if authUser.IsCompany {
		s.logger.Debug("rejected response creation by company account",
			"user_id", authUser.ID)
		return nil, ErrOnlyApplicantCanRespond
	}

	response, err := domain.NewResponse(authUser.ID, draft.JobID, draft.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.responseStore.Create(ctx, response); err != nil {
		if errors.Is(err, store.ErrDuplicateResponse) {
			s.logger.Debug("duplicate response rejected",
				"user_id", authUser.ID,
				"job_id", draft.JobID)
		} else {
			s.logger.Error("failed to save response",
				"error", err,
				"user_id", authUser.ID,
				"job_id", draft.JobID)
		}
		return nil, err
	}

	s.logger.Info("response submitted",
		"response_id", response.ID,
		"job_id", response.JobID)

	return response, nil
}

// ListForUser implements ResponseService.ListForUser
func (s *ResponseServiceImpl) ListForUser(
	ctx context.Context,
	authUser *domain.User,
) ([]domain.ResponseWithJob, error) {
	if authUser.IsCompany {
		return nil, ErrOnlyApplicantResponses
	}

	return s.responseStore.ListByUserID(ctx, authUser.ID)
}

// ListForCompany implements ResponseService.ListForCompany
func (s *ResponseServiceImpl) ListForCompany(
	ctx context.Context,
	authUser *domain.User,
) ([]domain.ResponseWithUser, error) {
	if !authUser.IsCompany {
		return nil, ErrOnlyCompanyResponses
	}

	return s.responseStore.ListByCompanyID(ctx, authUser.ID)
}

// ListForJob implements ResponseService.ListForJob
func (s *ResponseServiceImpl) ListForJob(
	ctx context.Context,
	jobID uuid.UUID,
	authUser *domain.User,
) ([]domain.ResponseWithUser, error) {
	return s.responseStore.ListByJobID(ctx, jobID)
}

// Delete implements ResponseService.Delete
func (s *ResponseServiceImpl) Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
	if _, err := s.responseStore.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.responseStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete response",
			"error", err,
			"response_id", id)
		return err
	}

	s.logger.Info("response deleted",
		"response_id", id,
		"deleted_by", authUser.ID)

	return nil
}
