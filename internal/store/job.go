package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
)

// JobStore defines the interface for job posting persistence.
type JobStore interface {
	// Create saves a new job posting to the store.
	Create(ctx context.Context, job *domain.Job) error

	// GetByID retrieves a job by its unique ID.
	// Returns ErrJobNotFound if the job does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// List returns jobs ordered by creation time, paginated by limit/offset.
	// Listings are public; no authorization data is consulted here.
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)

	// Delete removes a job from the store by its ID.
	// Returns ErrJobNotFound if the job does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new JobStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) JobStore
}
