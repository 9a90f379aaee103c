package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// ResponseStore implements store.ResponseStore for testing. The default
// implementation enforces the one-response-per-user-per-job rule the same
// way the database constraint does, and resolves joins against the optional
// UserStore and JobStore references.
type ResponseStore struct {
	CreateFn          func(ctx context.Context, response *domain.Response) error
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Response, error)
	GetByIDWithJobFn  func(ctx context.Context, id uuid.UUID) (*domain.ResponseWithJob, error)
	ListByUserIDFn    func(ctx context.Context, userID uuid.UUID) ([]domain.ResponseWithJob, error)
	ListByCompanyIDFn func(ctx context.Context, companyID uuid.UUID) ([]domain.ResponseWithUser, error)
	ListByJobIDFn     func(ctx context.Context, jobID uuid.UUID) ([]domain.ResponseWithUser, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error

	Responses map[uuid.UUID]*domain.Response

	// Joined entities for the default list implementations.
	Users *UserStore
	Jobs  *JobStore
}

// Ensure ResponseStore implements store.ResponseStore
var _ store.ResponseStore = (*ResponseStore)(nil)

// NewResponseStore creates a new mock store joined against the given user
// and job mocks.
func NewResponseStore(users *UserStore, jobs *JobStore) *ResponseStore {
	return &ResponseStore{
		Responses: make(map[uuid.UUID]*domain.Response),
		Users:     users,
		Jobs:      jobs,
	}
}

// Create implements the store.ResponseStore interface.
func (m *ResponseStore) Create(ctx context.Context, response *domain.Response) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, response)
	}

	for _, existing := range m.Responses {
		if existing.UserID == response.UserID && existing.JobID == response.JobID {
			return store.ErrDuplicateResponse
		}
	}

	m.Responses[response.ID] = response
	return nil
}

// GetByID implements the store.ResponseStore interface.
func (m *ResponseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Response, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	response, exists := m.Responses[id]
	if !exists {
		return nil, store.ErrResponseNotFound
	}

	return response, nil
}

// GetByIDWithJob implements the store.ResponseStore interface.
func (m *ResponseStore) GetByIDWithJob(ctx context.Context, id uuid.UUID) (*domain.ResponseWithJob, error) {
	if m.GetByIDWithJobFn != nil {
		return m.GetByIDWithJobFn(ctx, id)
	}

	response, exists := m.Responses[id]
	if !exists {
		return nil, store.ErrResponseNotFound
	}

	job, err := m.Jobs.GetByID(ctx, response.JobID)
	if err != nil {
		return nil, err
	}

	return &domain.ResponseWithJob{Response: *response, Job: *job}, nil
}

// ListByUserID implements the store.ResponseStore interface.
func (m *ResponseStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.ResponseWithJob, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	results := make([]domain.ResponseWithJob, 0)
	for _, response := range m.Responses {
		if response.UserID != userID {
			continue
		}
		job, err := m.Jobs.GetByID(ctx, response.JobID)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ResponseWithJob{Response: *response, Job: *job})
	}

	return results, nil
}

// ListByCompanyID implements the store.ResponseStore interface.
func (m *ResponseStore) ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.ResponseWithUser, error) {
	if m.ListByCompanyIDFn != nil {
		return m.ListByCompanyIDFn(ctx, companyID)
	}

	results := make([]domain.ResponseWithUser, 0)
	for _, response := range m.Responses {
		job, err := m.Jobs.GetByID(ctx, response.JobID)
		if err != nil {
			return nil, err
		}
		if job.OwnerID != companyID {
			continue
		}
		user, err := m.Users.GetByID(ctx, response.UserID)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ResponseWithUser{Response: *response, User: *user})
	}

	return results, nil
}

// ListByJobID implements the store.ResponseStore interface.
func (m *ResponseStore) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]domain.ResponseWithUser, error) {
	if m.ListByJobIDFn != nil {
		return m.ListByJobIDFn(ctx, jobID)
	}

	results := make([]domain.ResponseWithUser, 0)
	for _, response := range m.Responses {
		if response.JobID != jobID {
			continue
		}
		user, err := m.Users.GetByID(ctx, response.UserID)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ResponseWithUser{Response: *response, User: *user})
	}

	return results, nil
}

// Delete implements the store.ResponseStore interface.
func (m *ResponseStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Responses[id]; !exists {
		return store.ErrResponseNotFound
	}

	delete(m.Responses, id)
	return nil
}

// WithTx implements the store.ResponseStore interface.
func (m *ResponseStore) WithTx(tx *sql.Tx) store.ResponseStore {
	return m
}
