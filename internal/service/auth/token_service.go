package auth

import (
	"context"
	"time"

	"github.com/vacancyhq/jobdesk-api/internal/domain"
)

// Token type claim values. The type is part of the signed payload so one
// token kind cannot be substituted for the other.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenService defines operations for issuing and validating JWT
// authentication tokens and for the credential-based login flow.
type TokenService interface {
	// GenerateAccessToken creates a signed short-lived access token for the
	// given user. Returns the token string or an error if signing fails.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)

	// GenerateRefreshToken creates a signed long-lived refresh token for the
	// given user, used to obtain new token pairs.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the token's signature and expiry, then checks
	// that its type claim matches tokenType (TokenTypeAccess or
	// TokenTypeRefresh). Returns the claims on success. Fails with
	// ErrExpiredToken, ErrInvalidToken, or ErrWrongTokenType.
	ValidateToken(ctx context.Context, tokenString, tokenType string) (*Claims, error)

	// Login authenticates the user by email and password and, on success,
	// returns a fresh access/refresh token pair.
	// Fails with store.ErrUserNotFound if the email is unknown and
	// ErrWrongCredentials if the password does not match.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// Refresh validates a refresh token, resolves its subject to a user and
	// issues a fresh access/refresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// Claims represents the validated claim set extracted from a token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string `json:"sub,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string `json:"type,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}

// TokenPair carries a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
