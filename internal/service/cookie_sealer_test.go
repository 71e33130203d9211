package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid 32-byte key in hex (64 chars)
const testCookieKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestCookieSealer_NewInvalidKey(t *testing.T) {
	_, err := NewCookieSealer("shortkey")
	assert.Error(t, err)

	_, err = NewCookieSealer("0123456789abcdef")
	assert.ErrorContains(t, err, "must be 32 bytes")
}

func TestCookieSealer_SealOpen(t *testing.T) {
	sealer, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)

	sealed, err := sealer.Seal("email", "rider@example.com")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "rider")

	opened, err := sealer.Open("email", sealed)
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", opened)
}

func TestCookieSealer_EmptyValue(t *testing.T) {
	sealer, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)

	sealed, err := sealer.Seal("accessToken", "")
	require.NoError(t, err)

	opened, err := sealer.Open("accessToken", sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestCookieSealer_DifferentNonces(t *testing.T) {
	sealer, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)

	s1, err := sealer.Seal("accessToken", "tok")
	require.NoError(t, err)
	s2, err := sealer.Seal("accessToken", "tok")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2, "same value should seal differently due to random nonce")
}

func TestCookieSealer_BoundToName(t *testing.T) {
	sealer, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)

	sealed, err := sealer.Seal("email", "rider@example.com")
	require.NoError(t, err)

	_, err = sealer.Open("accessToken", sealed)
	assert.Error(t, err, "value sealed for one cookie must not open under another")
}

func TestCookieSealer_Tampered(t *testing.T) {
	sealer, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)

	sealed, err := sealer.Seal("email", "rider@example.com")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	_, err = sealer.Open("email", base64.RawURLEncoding.EncodeToString(raw))
	assert.Error(t, err)

	_, err = sealer.Open("email", "not base64!")
	assert.Error(t, err)

	_, err = sealer.Open("email", "c2hvcnQ")
	assert.ErrorContains(t, err, "too short")
}

func TestCookieSealer_WrongKey(t *testing.T) {
	s1, err := NewCookieSealer(testCookieKey)
	require.NoError(t, err)
	s2, err := NewCookieSealer("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	sealed, err := s1.Seal("email", "a@b.co")
	require.NoError(t, err)

	_, err = s2.Open("email", sealed)
	assert.Error(t, err)
}
