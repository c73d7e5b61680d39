package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPasswordLength(t *testing.T) {
	pw, err := RandomPassword(12)
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	for _, r := range pw {
		assert.True(t, strings.ContainsRune(passwordCharset, r), "unexpected rune %q", r)
	}
}

func TestRandomPasswordMinimum(t *testing.T) {
	_, err := RandomPassword(4)
	assert.Error(t, err)
}

func TestRandomPasswordIsNotConstant(t *testing.T) {
	a, err := RandomPassword(16)
	require.NoError(t, err)
	b, err := RandomPassword(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
