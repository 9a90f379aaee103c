package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/mocks"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

func mustJob(t *testing.T, store *mocks.JobStore, ownerID uuid.UUID, title string) *domain.Job {
	t.Helper()

	job, err := domain.NewJob(ownerID, title, "description", 0, 0)
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), job))

	return job
}

func TestJobServiceCreate(t *testing.T) {
	t.Run("company can post a job", func(t *testing.T) {
		jobStore := mocks.NewJobStore()
		svc := NewJobService(jobStore, testLogger())
		company := mustUser(t, "hr@acme.example", true)

		job, err := svc.Create(context.Background(), JobDraft{
			Title:       "Go Developer",
			Description: "Build backend services",
			SalaryFrom:  90000,
			SalaryTo:    120000,
		}, company)
		require.NoError(t, err)

		assert.Equal(t, company.ID, job.OwnerID)
		assert.True(t, job.IsActive)

		stored, err := jobStore.GetByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go Developer", stored.Title)
	})

	t.Run("applicant cannot post a job", func(t *testing.T) {
		jobStore := mocks.NewJobStore()
		svc := NewJobService(jobStore, testLogger())
		applicant := mustUser(t, "applicant@example.com", false)

		_, err := svc.Create(context.Background(), JobDraft{Title: "Go Developer"}, applicant)
		assert.ErrorIs(t, err, ErrOnlyCompanyCanCreateJob)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, jobStore.Jobs)
	})

	t.Run("invalid salary range", func(t *testing.T) {
		svc := NewJobService(mocks.NewJobStore(), testLogger())
		company := mustUser(t, "hr@acme.example", true)

		_, err := svc.Create(context.Background(), JobDraft{
			Title:      "Go Developer",
			SalaryFrom: 120000,
			SalaryTo:   90000,
		}, company)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestJobServiceDelete(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		jobStore := mocks.NewJobStore()
		svc := NewJobService(jobStore, testLogger())
		company := mustUser(t, "hr@acme.example", true)
		job := mustJob(t, jobStore, company.ID, "Go Developer")

		require.NoError(t, svc.Delete(context.Background(), job.ID, company))
		assert.Empty(t, jobStore.Jobs)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		jobStore := mocks.NewJobStore()
		svc := NewJobService(jobStore, testLogger())
		owner := mustUser(t, "hr@acme.example", true)
		other := mustUser(t, "hr@rival.example", true)
		job := mustJob(t, jobStore, owner.ID, "Go Developer")

		err := svc.Delete(context.Background(), job.ID, other)
		assert.ErrorIs(t, err, ErrOnlyJobOwnerCanDeleteJob)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Len(t, jobStore.Jobs, 1)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc := NewJobService(mocks.NewJobStore(), testLogger())
		company := mustUser(t, "hr@acme.example", true)

		err := svc.Delete(context.Background(), uuid.New(), company)
		assert.ErrorIs(t, err, store.ErrJobNotFound)
	})
}

func TestJobServiceList(t *testing.T) {
	jobStore := mocks.NewJobStore()

	var gotLimit, gotOffset int
	jobStore.ListFn = func(ctx context.Context, limit, offset int) ([]domain.Job, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}

	svc := NewJobService(jobStore, testLogger())

	_, err := svc.List(context.Background(), -3, -3)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
	assert.Equal(t, 0, gotOffset)
}
