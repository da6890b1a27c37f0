package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString_Deterministic(t *testing.T) {
	h1 := HashString("password123", "key")
	h2 := HashString("password123", "key")

	require.NotEmpty(t, h1)
	assert.Equal(t, h1, h2)
}

func TestHashString_KeySensitive(t *testing.T) {
	h1 := HashString("password123", "key-a")
	h2 := HashString("password123", "key-b")

	assert.NotEqual(t, h1, h2)
}

func TestHashString_DataSensitive(t *testing.T) {
	h1 := HashString("password123", "key")
	h2 := HashString("password124", "key")

	assert.NotEqual(t, h1, h2)
}

func TestHashString_HexEncoded(t *testing.T) {
	h := HashString("data", "key")
	assert.Len(t, h, 64, "hex-encoded SHA-256 digest")
	assert.Regexp(t, "^[0-9a-f]+$", h)
}
