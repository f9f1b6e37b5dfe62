package utils_test

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/cgcym1234/authserver/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"aB3def", true},
		{"Ab1", false},          // too short
		{"passw0rd", false},     // no upper
		{"PASSW0RD", false},     // no lower
		{"Password", false},     // no digit
		{"Pässw0rd", false},     // non-ASCII
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.IsValidPassword(tt.password), "password %q", tt.password)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)
	assert.True(t, utils.CheckPasswordHash("Passw0rd", hash))
	assert.False(t, utils.CheckPasswordHash("passw0rd", hash))

	// Hashing is salted: same input, different hashes.
	other, err := utils.HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestGenerateTokenString(t *testing.T) {
	tok, err := utils.GenerateTokenString(32)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := utils.GenerateTokenString(32)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	_, err = utils.GenerateTokenString(0)
	assert.Error(t, err)
}

func TestGenerateHexString(t *testing.T) {
	s, err := utils.GenerateHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	_, err = hex.DecodeString(s)
	require.NoError(t, err)

	_, err = utils.GenerateHexString(-1)
	assert.Error(t, err)
}

func TestGenerateShortCode(t *testing.T) {
	code, err := utils.GenerateShortCode(4)
	require.NoError(t, err)
	assert.Len(t, code, 4)
	for _, r := range code {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, isAlnum, "unexpected rune %q", r)
	}

	_, err = utils.GenerateShortCode(0)
	assert.Error(t, err)
}
