package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// JobStore implements store.JobStore for testing.
type JobStore struct {
	CreateFn  func(ctx context.Context, job *domain.Job) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListFn    func(ctx context.Context, limit, offset int) ([]domain.Job, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Jobs map[uuid.UUID]*domain.Job
}

// Ensure JobStore implements store.JobStore
var _ store.JobStore = (*JobStore)(nil)

// NewJobStore creates a new mock store with initialized defaults.
func NewJobStore() *JobStore {
	return &JobStore{
		Jobs: make(map[uuid.UUID]*domain.Job),
	}
}

// Create implements the store.JobStore interface.
func (m *JobStore) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, job)
	}

	m.Jobs[job.ID] = job
	return nil
}

// GetByID implements the store.JobStore interface.
func (m *JobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	job, exists := m.Jobs[id]
	if !exists {
		return nil, store.ErrJobNotFound
	}

	return job, nil
}

// List implements the store.JobStore interface.
func (m *JobStore) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	jobs := make([]domain.Job, 0, len(m.Jobs))
	for _, job := range m.Jobs {
		jobs = append(jobs, *job)
	}

	if offset >= len(jobs) {
		return []domain.Job{}, nil
	}
	jobs = jobs[offset:]
	if limit < len(jobs) {
		jobs = jobs[:limit]
	}

	return jobs, nil
}

// Delete implements the store.JobStore interface.
func (m *JobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Jobs[id]; !exists {
		return store.ErrJobNotFound
	}

	delete(m.Jobs, id)
	return nil
}

// WithTx implements the store.JobStore interface.
func (m *JobStore) WithTx(tx *sql.Tx) store.JobStore {
	return m
}
