package auth

import (
	"strings"
	"testing"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret123")
	assert.False(t, strings.Contains(hash, "|"))

	ok, err := h.Verify(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "secret124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("secret123")
	require.NoError(t, err)
	b, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_TooShort(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash("abc")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHasher_CorruptHash(t *testing.T) {
	ok, err := NewHasher(bcrypt.MinCost).Verify("not-a-hash", "secret123")

	assert.False(t, ok)
	assert.Error(t, err)
}

func TestNewHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).Cost)
}
