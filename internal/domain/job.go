package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Job validation errors
var (
	ErrEmptyJobID         = errors.New("job ID cannot be empty")
	ErrEmptyJobOwner      = errors.New("job owner cannot be empty")
	ErrEmptyJobTitle      = errors.New("job title cannot be empty")
	ErrInvalidSalaryRange = errors.New("salary_from cannot exceed salary_to")
)

// Job represents a vacancy posted by a company user. OwnerID references the
// company account that created the posting; it is a non-owning back-reference
// used for authorization and queries, never for cascading ownership.
type Job struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SalaryFrom  int       `json:"salary_from"`
	SalaryTo    int       `json:"salary_to"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewJob creates a new active Job owned by the given user.
// Returns an error if validation fails.
func NewJob(ownerID uuid.UUID, title, description string, salaryFrom, salaryTo int) (*Job, error) {
	job := &Job{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		SalaryFrom:  salaryFrom,
		SalaryTo:    salaryTo,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks if the Job has valid data.
func (j *Job) Validate() error {
	if j.ID == uuid.Nil {
		return ErrEmptyJobID
	}

	if j.OwnerID == uuid.Nil {
		return ErrEmptyJobOwner
	}

	if j.Title == "" {
		return ErrEmptyJobTitle
	}

	if j.SalaryFrom > 0 && j.SalaryTo > 0 && j.SalaryFrom > j.SalaryTo {
		return ErrInvalidSalaryRange
	}

	return nil
}
