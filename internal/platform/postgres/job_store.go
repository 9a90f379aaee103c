package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// JobStore implements the store.JobStore interface using a PostgreSQL
// database as the storage backend.
type JobStore struct {
	db store.DBTX
}

// NewJobStore creates a new PostgreSQL implementation of the JobStore interface.
func NewJobStore(db store.DBTX) *JobStore {
	return &JobStore{db: db}
}

// Ensure JobStore implements store.JobStore
var _ store.JobStore = (*JobStore)(nil)

// WithTx implements store.JobStore.WithTx
func (s *JobStore) WithTx(tx *sql.Tx) store.JobStore {
	return &JobStore{db: tx}
}

// Create implements store.JobStore.Create
func (s *JobStore) Create(ctx context.Context, job *domain.Job) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO jobs (id, owner_id, title, description, salary_from, salary_to, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		job.OwnerID,
		job.Title,
		job.Description,
		job.SalaryFrom,
		job.SalaryTo,
		job.IsActive,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.JobStore.GetByID
func (s *JobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `
		SELECT id, owner_id, title, description, salary_from, salary_to, is_active, created_at, updated_at
		FROM jobs
		WHERE id = $1`

	var job domain.Job
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.OwnerID,
		&job.Title,
		&job.Description,
		&job.SalaryFrom,
		&job.SalaryTo,
		&job.IsActive,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrJobNotFound
		}
		return nil, MapError(err)
	}

	return &job, nil
}

// List implements store.JobStore.List
func (s *JobStore) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	query := `
		SELECT id, owner_id, title, description, salary_from, salary_to, is_active, created_at, updated_at
		FROM jobs
		ORDER BY created_at
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.OwnerID,
			&job.Title,
			&job.Description,
			&job.SalaryFrom,
			&job.SalaryTo,
			&job.IsActive,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return jobs, nil
}

// Delete implements store.JobStore.Delete
func (s *JobStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrJobNotFound)
}
