package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacancyhq/jobdesk-api/internal/api/shared"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	pair := &auth.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	t.Run("success returns token pair", func(t *testing.T) {
		t.Parallel()

		tokenService := &mockTokenService{
			LoginFn: func(ctx context.Context, email, password string) (*auth.TokenPair, error) {
				assert.Equal(t, "applicant@example.com", email)
				assert.Equal(t, "password123", password)
				return pair, nil
			},
		}
		handler := NewAuthHandler(tokenService, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
			Email:    "applicant@example.com",
			Password: "password123",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got auth.TokenPair
		decodeBody(t, rec, &got)
		assert.Equal(t, *pair, got)
	})

	t.Run("wrong credentials and unknown email look identical", func(t *testing.T) {
		t.Parallel()

		for name, loginErr := range map[string]error{
			"wrong password": auth.ErrWrongCredentials,
			"unknown email":  store.ErrUserNotFound,
		} {
			tokenService := &mockTokenService{
				LoginFn: func(ctx context.Context, email, password string) (*auth.TokenPair, error) {
					return nil, loginErr
				},
			}
			handler := NewAuthHandler(tokenService, testLogger())

			req := jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
				Email:    "applicant@example.com",
				Password: "password123",
			})
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, name)

			var body shared.ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, "Invalid credentials", body.Error, name)
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&mockTokenService{}, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
			Email: "applicant@example.com",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error is not echoed to the client", func(t *testing.T) {
		t.Parallel()

		tokenService := &mockTokenService{
			LoginFn: func(ctx context.Context, email, password string) (*auth.TokenPair, error) {
				return nil, errors.New("connection to postgres://user:secret@db failed")
			},
		}
		handler := NewAuthHandler(tokenService, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{
			Email:    "applicant@example.com",
			Password: "password123",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid refresh token returns a new pair", func(t *testing.T) {
		t.Parallel()

		tokenService := &mockTokenService{
			RefreshFn: func(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
				assert.Equal(t, "old-refresh-token", refreshToken)
				return &auth.TokenPair{
					AccessToken:  "new-access",
					RefreshToken: "new-refresh",
					TokenType:    "Bearer",
				}, nil
			},
		}
		handler := NewAuthHandler(tokenService, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/auth/refresh", RefreshRequest{
			RefreshToken: "old-refresh-token",
		})
		rec := httptest.NewRecorder()
		handler.RefreshToken(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got auth.TokenPair
		decodeBody(t, rec, &got)
		assert.Equal(t, "new-access", got.AccessToken)
	})

	t.Run("invalid expired and wrong-type tokens all map to 401", func(t *testing.T) {
		t.Parallel()

		for name, refreshErr := range map[string]error{
			"invalid":    auth.ErrInvalidToken,
			"expired":    auth.ErrExpiredToken,
			"wrong type": auth.ErrWrongTokenType,
			"user gone":  store.ErrUserNotFound,
		} {
			tokenService := &mockTokenService{
				RefreshFn: func(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
					return nil, refreshErr
				},
			}
			handler := NewAuthHandler(tokenService, testLogger())

			req := jsonRequest(t, http.MethodPost, "/api/auth/refresh", RefreshRequest{
				RefreshToken: "some-token",
			})
			rec := httptest.NewRecorder()
			handler.RefreshToken(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, name)

			var body shared.ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, "Invalid refresh token", body.Error, name)
		}
	})

	t.Run("missing token field", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&mockTokenService{}, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/auth/refresh", RefreshRequest{})
		rec := httptest.NewRecorder()
		handler.RefreshToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
