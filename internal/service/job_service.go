package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// JobDraft carries the caller-supplied fields for a new job posting.
type JobDraft struct {
	Title       string
	Description string
	SalaryFrom  int
	SalaryTo    int
}

// JobService provides job posting lifecycle operations with ownership rules.
type JobService interface {
	// GetByID retrieves a job by ID. Returns store.ErrJobNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// List returns a page of jobs. Listing is public and unauthenticated.
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)

	// Create posts a new job owned by authUser. Only company users may post;
	// applicants get ErrOnlyCompanyCanCreateJob.
	Create(ctx context.Context, draft JobDraft, authUser *domain.User) (*domain.Job, error)

	// Delete removes a job. Only the owning company may delete; anyone else
	// gets ErrOnlyJobOwnerCanDeleteJob. Returns store.ErrJobNotFound if the
	// job does not exist.
	Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error
}

// JobServiceImpl implements the JobService interface.
type JobServiceImpl struct {
	jobStore store.JobStore
	logger   *slog.Logger
}

// Ensure JobServiceImpl implements JobService
var _ JobService = (*JobServiceImpl)(nil)

// NewJobService creates a new JobService.
func NewJobService(jobStore store.JobStore, logger *slog.Logger) *JobServiceImpl {
	return &JobServiceImpl{
		jobStore: jobStore,
		logger:   logger.With("component", "job_service"),
	}
}

// GetByID implements JobService.GetByID
func (s *JobServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return s.jobStore.GetByID(ctx, id)
}

// List implements JobService.List
func (s *JobServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return s.jobStore.List(ctx, normalizeLimit(limit), normalizeOffset(offset))
}

// Create implements JobService.Create
func (s *JobServiceImpl) Create(
	ctx context.Context,
	draft JobDraft,
	authUser *domain.User,
) (*domain.Job, error) {
	if !authUser.IsCompany {
		s.logger.Debug("rejected job creation by applicant account",
			"user_id", authUser.ID)
		return nil, ErrOnlyCompanyCanCreateJob
	}

	job, err := domain.NewJob(authUser.ID, draft.Title, draft.Description, draft.SalaryFrom, draft.SalaryTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.jobStore.Create(ctx, job); err != nil {
		s.logger.Error("failed to save job",
			"error", err,
			"owner_id", authUser.ID)
		return nil, err
	}

	s.logger.Info("job created",
		"job_id", job.ID,
		"owner_id", job.OwnerID)

	return job, nil
}

// Delete implements JobService.Delete
func (s *JobServiceImpl) Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
	job, err := s.jobStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if job.OwnerID != authUser.ID {
		s.logger.Debug("rejected job deletion by non-owner",
			"job_id", id,
			"user_id", authUser.ID)
		return ErrOnlyJobOwnerCanDeleteJob
	}

	if err := s.jobStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete job",
			"error", err,
			"job_id", id)
		return err
	}

	s.logger.Info("job deleted",
		"job_id", id,
		"owner_id", authUser.ID)

	return nil
}
