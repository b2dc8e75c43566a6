package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  Asha.Rao@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "asha.rao@example.com", got)

	for _, bad := range []string{"", "asha", "Asha <asha@example.com>", "a@b.c, d@e.f"} {
		_, err := NormalizeEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestExtractEmailDomain(t *testing.T) {
	d, err := ExtractEmailDomain("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", d)

	_, err = ExtractEmailDomain("no-at-sign")
	assert.Error(t, err)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(32)
	require.NoError(t, err)
	b, err := RandomToken(32)
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
}

func TestSha256Hex(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Sha256Hex(""))
	assert.Len(t, Sha256Hex("token"), 64)
}
