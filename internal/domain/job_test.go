package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewJob(t *testing.T) {
	ownerID := uuid.New()

	job, err := NewJob(ownerID, "Go Developer", "Build backend services", 90000, 120000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if job.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if job.OwnerID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, job.OwnerID)
	}

	if !job.IsActive {
		t.Error("Expected new job to be active")
	}

	if job.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Missing owner
	_, err = NewJob(uuid.Nil, "Go Developer", "", 0, 0)
	if !errors.Is(err, ErrEmptyJobOwner) {
		t.Errorf("Expected error %v, got %v", ErrEmptyJobOwner, err)
	}

	// Missing title
	_, err = NewJob(ownerID, "", "", 0, 0)
	if !errors.Is(err, ErrEmptyJobTitle) {
		t.Errorf("Expected error %v, got %v", ErrEmptyJobTitle, err)
	}
}

func TestJobSalaryRange(t *testing.T) {
	ownerID := uuid.New()

	// Inverted range is rejected.
	_, err := NewJob(ownerID, "Go Developer", "", 120000, 90000)
	if !errors.Is(err, ErrInvalidSalaryRange) {
		t.Errorf("Expected error %v, got %v", ErrInvalidSalaryRange, err)
	}

	// Unset bounds are fine; zero means "not specified".
	if _, err := NewJob(ownerID, "Go Developer", "", 0, 0); err != nil {
		t.Errorf("Expected no error for unspecified salary, got %v", err)
	}

	if _, err := NewJob(ownerID, "Go Developer", "", 90000, 0); err != nil {
		t.Errorf("Expected no error for open-ended salary, got %v", err)
	}

	if _, err := NewJob(ownerID, "Go Developer", "", 90000, 90000); err != nil {
		t.Errorf("Expected no error for fixed salary, got %v", err)
	}
}
