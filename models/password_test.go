package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("123qwerty")
	require.NoError(t, err)
	b, err := HashPassword("123qwerty")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two digests of the same input differ.
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "$2"))
}

func TestCheckPasswordHash(t *testing.T) {
	digest, err := HashPassword("123qwerty")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("123qwerty", digest))
	assert.False(t, CheckPasswordHash("wrong", digest))
	assert.False(t, CheckPasswordHash("123qwerty", ""))
	assert.False(t, CheckPasswordHash("123qwerty", "not-a-digest"))
}
