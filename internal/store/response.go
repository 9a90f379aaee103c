package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
)

// ResponseStore defines the interface for job application persistence.
// Responses are immutable, so there is no Update.
type ResponseStore interface {
	// Create saves a new response to the store.
	// Returns ErrDuplicateResponse if the applicant has already responded to
	// the job, detected via the unique constraint on (user_id, job_id).
	Create(ctx context.Context, response *domain.Response) error

	// GetByID retrieves a response by its unique ID.
	// Returns ErrResponseNotFound if the response does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Response, error)

	// GetByIDWithJob retrieves a response joined with its target job.
	// Returns ErrResponseNotFound if the response does not exist.
	GetByIDWithJob(ctx context.Context, id uuid.UUID) (*domain.ResponseWithJob, error)

	// ListByUserID returns all responses submitted by the given applicant,
	// each joined with the job it targets.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.ResponseWithJob, error)

	// ListByCompanyID returns all responses to jobs owned by the given
	// company user, each joined with the applicant's profile.
	ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.ResponseWithUser, error)

	// ListByJobID returns all responses to the given job, each joined with
	// the applicant's profile.
	ListByJobID(ctx context.Context, jobID uuid.UUID) ([]domain.ResponseWithUser, error)

	// Delete removes a response from the store by its ID.
	// Returns ErrResponseNotFound if the response does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ResponseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ResponseStore
}
