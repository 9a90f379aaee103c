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

// ResponseStore implements the store.ResponseStore interface using a
// PostgreSQL database as the storage backend.
type ResponseStore struct {
	db store.DBTX
}

// NewResponseStore creates a new PostgreSQL implementation of the
// ResponseStore interface.
func NewResponseStore(db store.DBTX) *ResponseStore {
	return &ResponseStore{db: db}
}

// Ensure ResponseStore implements store.ResponseStore
var _ store.ResponseStore = (*ResponseStore)(nil)

// WithTx implements store.ResponseStore.WithTx
func (s *ResponseStore) WithTx(tx *sql.Tx) store.ResponseStore {
	return &ResponseStore{db: tx}
}

// Create implements store.ResponseStore.Create
func (s *ResponseStore) Create(ctx context.Context, response *domain.Response) error {
	if err := response.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO responses (id, user_id, job_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		response.ID,
		response.UserID,
		response.JobID,
		response.Message,
		response.CreatedAt,
	)
	if err != nil {
		// The uix_user_job constraint rejects a second response from the
		// same applicant to the same job.
		return MapUniqueViolation(err, store.ErrDuplicateResponse)
	}

	return nil
}

// GetByID implements store.ResponseStore.GetByID
func (s *ResponseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Response, error) {
	query := `
		SELECT id, user_id, job_id, message, created_at
		FROM responses
		WHERE id = $1`

	var response domain.Response
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&response.ID,
		&response.UserID,
		&response.JobID,
		&response.Message,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrResponseNotFound
		}
		return nil, MapError(err)
	}

	return &response, nil
}

// GetByIDWithJob implements store.ResponseStore.GetByIDWithJob
func (s *ResponseStore) GetByIDWithJob(ctx context.Context, id uuid.UUID) (*domain.ResponseWithJob, error) {
	query := `
		SELECT r.id, r.user_id, r.job_id, r.message, r.created_at,
		       j.id, j.owner_id, j.title, j.description, j.salary_from, j.salary_to, j.is_active, j.created_at, j.updated_at
		FROM responses r
		JOIN jobs j ON j.id = r.job_id
		WHERE r.id = $1`

	var rwj domain.ResponseWithJob
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rwj.Response.ID,
		&rwj.Response.UserID,
		&rwj.Response.JobID,
		&rwj.Response.Message,
		&rwj.Response.CreatedAt,
		&rwj.Job.ID,
		&rwj.Job.OwnerID,
		&rwj.Job.Title,
		&rwj.Job.Description,
		&rwj.Job.SalaryFrom,
		&rwj.Job.SalaryTo,
		&rwj.Job.IsActive,
		&rwj.Job.CreatedAt,
		&rwj.Job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrResponseNotFound
		}
		return nil, MapError(err)
	}

	return &rwj, nil
}

// ListByUserID implements store.ResponseStore.ListByUserID
func (s *ResponseStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.ResponseWithJob, error) {
	query := `
		SELECT r.id, r.user_id, r.job_id, r.message, r.created_at,
		       j.id, j.owner_id, j.title, j.description, j.salary_from, j.salary_to, j.is_active, j.created_at, j.updated_at
		FROM responses r
		JOIN jobs j ON j.id = r.job_id
		WHERE r.user_id = $1
		ORDER BY r.created_at`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.ResponseWithJob, 0)
	for rows.Next() {
		var rwj domain.ResponseWithJob
		if err := rows.Scan(
			&rwj.Response.ID,
			&rwj.Response.UserID,
			&rwj.Response.JobID,
			&rwj.Response.Message,
			&rwj.Response.CreatedAt,
			&rwj.Job.ID,
			&rwj.Job.OwnerID,
			&rwj.Job.Title,
			&rwj.Job.Description,
			&rwj.Job.SalaryFrom,
			&rwj.Job.SalaryTo,
			&rwj.Job.IsActive,
			&rwj.Job.CreatedAt,
			&rwj.Job.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		results = append(results, rwj)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return results, nil
}

// ListByCompanyID implements store.ResponseStore.ListByCompanyID
func (s *ResponseStore) ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.ResponseWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.job_id, r.message, r.created_at,
		       u.id, u.email, u.name, u.is_company, u.created_at, u.updated_at
		FROM responses r
		JOIN jobs j ON j.id = r.job_id
		JOIN users u ON u.id = r.user_id
		WHERE j.owner_id = $1
		ORDER BY r.created_at`

	return s.queryResponsesWithUser(ctx, query, companyID)
}

// ListByJobID implements store.ResponseStore.ListByJobID
func (s *ResponseStore) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]domain.ResponseWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.job_id, r.message, r.created_at,
		       u.id, u.email, u.name, u.is_company, u.created_at, u.updated_at
		FROM responses r
		JOIN users u ON u.id = r.user_id
		WHERE r.job_id = $1
		ORDER BY r.created_at`

	return s.queryResponsesWithUser(ctx, query, jobID)
}

// Delete implements store.ResponseStore.Delete
func (s *ResponseStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrResponseNotFound)
}

// queryResponsesWithUser runs a response+applicant join query. The applicant's
// hashed password is deliberately not selected; company-facing listings never
// carry credentials.
func (s *ResponseStore) queryResponsesWithUser(
	ctx context.Context,
	query string,
	arg any,
) ([]domain.ResponseWithUser, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.ResponseWithUser, 0)
	for rows.Next() {
		var rwu domain.ResponseWithUser
		if err := rows.Scan(
			&rwu.Response.ID,
			&rwu.Response.UserID,
			&rwu.Response.JobID,
			&rwu.Response.Message,
			&rwu.Response.CreatedAt,
			&rwu.User.ID,
			&rwu.User.Email,
			&rwu.User.Name,
			&rwu.User.IsCompany,
			&rwu.User.CreatedAt,
			&rwu.User.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		results = append(results, rwu)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return results, nil
}
