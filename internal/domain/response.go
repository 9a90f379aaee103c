package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Response validation errors
var (
	ErrEmptyResponseID      = errors.New("response ID cannot be empty")
	ErrEmptyResponseUser    = errors.New("response user cannot be empty")
	ErrEmptyResponseJob     = errors.New("response job cannot be empty")
	ErrEmptyResponseMessage = errors.New("response message cannot be empty")
)

// Response represents an applicant's application to a job. Responses are
// immutable once created; a user may submit at most one response per job,
// which the database enforces with a unique constraint on (user_id, job_id).
type Response struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ResponseWithJob pairs a response with the job it targets,
// for applicant-facing listings.
type ResponseWithJob struct {
	Response Response `json:"response"`
	Job      Job      `json:"job"`
}

// ResponseWithUser pairs a response with the applicant's profile,
// for company-facing listings.
type ResponseWithUser struct {
	Response Response `json:"response"`
	User     User     `json:"user"`
}

// NewResponse creates a new Response from the given applicant to the given job.
// Returns an error if validation fails.
func NewResponse(userID, jobID uuid.UUID, message string) (*Response, error) {
	response := &Response{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := response.Validate(); err != nil {
		return nil, err
	}

	return response, nil
}

// Validate checks if the Response has valid data.
func (r *Response) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyResponseID
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyResponseUser
	}

	if r.JobID == uuid.Nil {
		return ErrEmptyResponseJob
	}

	if r.Message == "" {
		return ErrEmptyResponseMessage
	}

	return nil
}
