package useragent_test

import (
	"encoding/json"
	"testing"

	"github.com/dmitrymomot/webwhoami/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParenthetical(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
		ok       bool
	}{
		{
			name:     "First pair only",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko)",
			expected: "X11; Linux x86_64",
			ok:       true,
		},
		{
			name:     "Empty parenthetical",
			ua:       "Mozilla/5.0 () Gecko",
			expected: "",
			ok:       true,
		},
		{
			name: "Missing opening",
			ua:   "Mozilla/5.0 X11) Gecko",
		},
		{
			name: "Missing closing",
			ua:   "Mozilla/5.0 (X11 Gecko",
		},
		{
			name: "Out of order",
			ua:   "Mozilla/5.0 ) X11 ( Gecko",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := useragent.Parenthetical(tc.ua)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "Windows", useragent.Windows.String())
	assert.Equal(t, "Linux", useragent.Linux.String())
	assert.Equal(t, "Mac OS", useragent.MacOS.String())
	assert.Equal(t, "Unknown: Nintendo Switch", useragent.Unknown("Nintendo Switch").String())

	assert.False(t, useragent.Linux.IsUnknown())
	assert.True(t, useragent.Unknown("Unknown").IsUnknown())
	assert.True(t, useragent.Platform{}.IsUnknown())
}

func TestPlatformMarshalText(t *testing.T) {
	data, err := json.Marshal(map[string]useragent.Platform{"platform": useragent.MacOS})
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"Mac OS"}`, string(data))
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, useragent.ErrDomainMissing, useragent.ErrNotFound)
	assert.ErrorIs(t, useragent.ErrNoUserAgent, useragent.ErrPermissionDenied)
	assert.ErrorIs(t, useragent.ErrParsingFailed, useragent.ErrInvalidData)

	assert.NotErrorIs(t, useragent.ErrParsingFailed, useragent.ErrPermissionDenied)
	assert.Contains(t, useragent.ErrDomainMissing.Error(), "Domain missing")
	assert.Contains(t, useragent.ErrParsingFailed.Error(), "Parsing failed")
}

// TestParsersAreIdempotent runs every parser twice over the same inputs
func TestParsersAreIdempotent(t *testing.T) {
	for _, ua := range []string{chromeDesktopUA, safariMacUA, edgeBrowserUA, gnomeWebUA, firefoxUbuntuUA, "", "garbage"} {
		assert.Equal(t, useragent.ParseDevicename(ua), useragent.ParseDevicename(ua))
		assert.Equal(t, useragent.ParsePlatform(ua), useragent.ParsePlatform(ua))

		d1, err1 := useragent.ParseDistro(ua)
		d2, err2 := useragent.ParseDistro(ua)
		assert.Equal(t, d1, d2)
		assert.Equal(t, err1, err2)
	}
}
