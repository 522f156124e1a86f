package crypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("Senha@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Senha@123", hash)
	assert.True(t, CheckPasswordHash("Senha@123", hash))
	assert.False(t, CheckPasswordHash("senha@123", hash))
}
