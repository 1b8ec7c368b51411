package oid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-scorecard-api/pkg/oid"
)

func TestParseValid(t *testing.T) {
	raw := "65f1c0ffee0ddba11caffe12"
	id, err := oid.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Hex())
}

func TestParseAcceptsUppercaseHex(t *testing.T) {
	_, err := oid.Parse("65F1C0FFEE0DDBA11CAFFE12")
	assert.NoError(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "65f1c0ffee0ddba11caffe1"},
		{"too long", "65f1c0ffee0ddba11caffe123"},
		{"non-hex characters", "65f1c0ffee0ddba11caffez!"},
		{"plain word", "not-an-id"},
		{"uuid shaped", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oid.Parse(tt.raw)
			assert.ErrorIs(t, err, oid.ErrInvalidID)
		})
	}
}

func TestNewRoundTrips(t *testing.T) {
	id := oid.New()
	hex := id.Hex()
	require.Len(t, hex, 24)
	assert.Equal(t, strings.ToLower(hex), hex)

	parsed, err := oid.Parse(hex)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		hex := oid.New().Hex()
		assert.False(t, seen[hex], "duplicate key %s", hex)
		seen[hex] = true
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, oid.IsValid(oid.New().Hex()))
	assert.False(t, oid.IsValid(""))
	assert.False(t, oid.IsValid("xyz"))
}
