package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/service"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

func newResponseRouter(responseService service.ResponseService) http.Handler {
	handler := NewResponseHandler(responseService, testLogger())
	r := chi.NewRouter()
	r.Post("/api/responses", handler.Create)
	r.Get("/api/responses/my", handler.ListMine)
	r.Get("/api/responses/company", handler.ListCompany)
	r.Get("/api/responses/job/{jobID}", handler.ListForJob)
	r.Delete("/api/responses/{id}", handler.Delete)
	return r
}

func TestResponseHandlerCreate(t *testing.T) {
	t.Parallel()

	applicant := &domain.User{ID: uuid.New(), Email: "applicant@example.com"}
	jobID := uuid.New()

	t.Run("applicant applies to a job", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			CreateFn: func(
				ctx context.Context,
				draft service.ResponseDraft,
				authUser *domain.User,
			) (*domain.Response, error) {
				assert.Equal(t, jobID, draft.JobID)
				assert.Equal(t, applicant.ID, authUser.ID)
				return &domain.Response{ID: uuid.New(), UserID: authUser.ID, JobID: draft.JobID}, nil
			},
		}

		req := jsonRequest(t, http.MethodPost, "/api/responses", CreateResponseRequest{
			JobID:   jobID,
			Message: "I would like to apply",
		})
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate application returns 409", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			CreateFn: func(
				ctx context.Context,
				draft service.ResponseDraft,
				authUser *domain.User,
			) (*domain.Response, error) {
				return nil, store.ErrDuplicateResponse
			},
		}

		req := jsonRequest(t, http.MethodPost, "/api/responses", CreateResponseRequest{
			JobID:   jobID,
			Message: "again",
		})
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("company account gets 403", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			CreateFn: func(
				ctx context.Context,
				draft service.ResponseDraft,
				authUser *domain.User,
			) (*domain.Response, error) {
				return nil, service.ErrOnlyApplicantCanRespond
			},
		}

		req := jsonRequest(t, http.MethodPost, "/api/responses", CreateResponseRequest{
			JobID:   jobID,
			Message: "company responding",
		})
		req = asAuthUser(req, &domain.User{ID: uuid.New(), Email: "hr@acme.example", IsCompany: true})
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing message returns 400", func(t *testing.T) {
		t.Parallel()

		req := jsonRequest(t, http.MethodPost, "/api/responses", CreateResponseRequest{JobID: jobID})
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(&mockResponseService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResponseHandlerLists(t *testing.T) {
	t.Parallel()

	applicant := &domain.User{ID: uuid.New(), Email: "applicant@example.com"}
	company := &domain.User{ID: uuid.New(), Email: "hr@acme.example", IsCompany: true}

	t.Run("my responses", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			ListForUserFn: func(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithJob, error) {
				return []domain.ResponseWithJob{{
					Response: domain.Response{UserID: authUser.ID},
					Job:      domain.Job{Title: "Go Developer"},
				}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/responses/my", nil)
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []domain.ResponseWithJob
		decodeBody(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Go Developer", got[0].Job.Title)
	})

	t.Run("company responses for wrong role return 403", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			ListForCompanyFn: func(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithUser, error) {
				return nil, service.ErrOnlyCompanyResponses
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/responses/company", nil)
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("responses for a job", func(t *testing.T) {
		t.Parallel()

		jobID := uuid.New()
		responseService := &mockResponseService{
			ListForJobFn: func(
				ctx context.Context,
				gotJobID uuid.UUID,
				authUser *domain.User,
			) ([]domain.ResponseWithUser, error) {
				assert.Equal(t, jobID, gotJobID)
				return []domain.ResponseWithUser{}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/responses/job/"+jobID.String(), nil)
		req = asAuthUser(req, company)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestResponseHandlerDelete(t *testing.T) {
	t.Parallel()

	applicant := &domain.User{ID: uuid.New(), Email: "applicant@example.com"}

	t.Run("existing response returns 204", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			DeleteFn: func(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/responses/"+uuid.NewString(), nil)
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing response returns 404", func(t *testing.T) {
		t.Parallel()

		responseService := &mockResponseService{
			DeleteFn: func(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
				return store.ErrResponseNotFound
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/responses/"+uuid.NewString(), nil)
		req = asAuthUser(req, applicant)
		rec := httptest.NewRecorder()
		newResponseRouter(responseService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
