package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vacancyhq/jobdesk-api/internal/api/shared"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/service"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockTokenService implements auth.TokenService with function fields.
type mockTokenService struct {
	GenerateAccessTokenFn  func(ctx context.Context, user *domain.User) (string, error)
	GenerateRefreshTokenFn func(ctx context.Context, user *domain.User) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString, tokenType string) (*auth.Claims, error)
	LoginFn                func(ctx context.Context, email, password string) (*auth.TokenPair, error)
	RefreshFn              func(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

var _ auth.TokenService = (*mockTokenService)(nil)

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	return m.GenerateAccessTokenFn(ctx, user)
}

func (m *mockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	return m.GenerateRefreshTokenFn(ctx, user)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, tokenString, tokenType string) (*auth.Claims, error) {
	return m.ValidateTokenFn(ctx, tokenString, tokenType)
}

func (m *mockTokenService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	return m.LoginFn(ctx, email, password)
}

func (m *mockTokenService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	return m.RefreshFn(ctx, refreshToken)
}

// mockUserService implements service.UserService with function fields.
type mockUserService struct {
	CreateFn     func(ctx context.Context, draft service.UserDraft) (*domain.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateFn     func(ctx context.Context, userID uuid.UUID, authUserEmail string, update service.UserUpdate) (*domain.User, error)
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) Create(ctx context.Context, draft service.UserDraft) (*domain.User, error) {
	return m.CreateFn(ctx, draft)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFn(ctx, email)
}

func (m *mockUserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return m.ListFn(ctx, limit, offset)
}

func (m *mockUserService) Update(
	ctx context.Context,
	userID uuid.UUID,
	authUserEmail string,
	update service.UserUpdate,
) (*domain.User, error) {
	return m.UpdateFn(ctx, userID, authUserEmail, update)
}

// mockJobService implements service.JobService with function fields.
type mockJobService struct {
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListFn    func(ctx context.Context, limit, offset int) ([]domain.Job, error)
	CreateFn  func(ctx context.Context, draft service.JobDraft, authUser *domain.User) (*domain.Job, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID, authUser *domain.User) error
}

var _ service.JobService = (*mockJobService)(nil)

func (m *mockJobService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockJobService) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return m.ListFn(ctx, limit, offset)
}

func (m *mockJobService) Create(ctx context.Context, draft service.JobDraft, authUser *domain.User) (*domain.Job, error) {
	return m.CreateFn(ctx, draft, authUser)
}

func (m *mockJobService) Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
	return m.DeleteFn(ctx, id, authUser)
}

// mockResponseService implements service.ResponseService with function fields.
type mockResponseService struct {
	CreateFn         func(ctx context.Context, draft service.ResponseDraft, authUser *domain.User) (*domain.Response, error)
	ListForUserFn    func(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithJob, error)
	ListForCompanyFn func(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithUser, error)
	ListForJobFn     func(ctx context.Context, jobID uuid.UUID, authUser *domain.User) ([]domain.ResponseWithUser, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID, authUser *domain.User) error
}

var _ service.ResponseService = (*mockResponseService)(nil)

func (m *mockResponseService) Create(
	ctx context.Context,
	draft service.ResponseDraft,
	authUser *domain.User,
) (*domain.Response, error) {
	return m.CreateFn(ctx, draft, authUser)
}

func (m *mockResponseService) ListForUser(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithJob, error) {
	return m.ListForUserFn(ctx, authUser)
}

func (m *mockResponseService) ListForCompany(ctx context.Context, authUser *domain.User) ([]domain.ResponseWithUser, error) {
	return m.ListForCompanyFn(ctx, authUser)
}

func (m *mockResponseService) ListForJob(
	ctx context.Context,
	jobID uuid.UUID,
	authUser *domain.User,
) ([]domain.ResponseWithUser, error) {
	return m.ListForJobFn(ctx, jobID, authUser)
}

func (m *mockResponseService) Delete(ctx context.Context, id uuid.UUID, authUser *domain.User) error {
	return m.DeleteFn(ctx, id, authUser)
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asAuthUser attaches an authenticated user to the request context the same
// way the auth middleware does.
func asAuthUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), shared.AuthUserContextKey, user)
	return r.WithContext(ctx)
}

// decodeBody unmarshals the recorded response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}
