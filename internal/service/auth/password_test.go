package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, hasher.Compare(hashed, "password123"))
	assert.Error(t, hasher.Compare(hashed, "wrongpassword"))

	// Hashing is salted; the same input never produces the same hash twice.
	hashed2, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2)
}
