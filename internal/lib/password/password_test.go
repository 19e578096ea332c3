package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h, err := NewHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, h.Compare(hash, "admin123"))
	assert.ErrorIs(t, h.Compare(hash, "admin124"), ErrMismatch)
}

func TestHashIsSalted(t *testing.T) {
	h, err := NewHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewHasherWithCost_OutOfRange(t *testing.T) {
	_, err := NewHasherWithCost(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	assert.Equal(t, bcrypt.DefaultCost, NewHasher().cost)
}

func TestCompare_MalformedHash(t *testing.T) {
	err := NewHasher().Compare("not-a-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
