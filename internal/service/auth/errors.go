package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature
	// doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates the token's type claim does not match the
	// expected type (e.g. a refresh token presented where an access token is
	// required). Kept distinct from ErrInvalidToken internally; the HTTP
	// layer maps both to the same status.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrWrongCredentials indicates the supplied password does not match the
	// stored hash
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)
