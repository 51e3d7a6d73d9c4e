package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/webwhoami/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected useragent.Platform
	}{
		{
			name:     "Windows 10",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/98.0.4758.102 Safari/537.36",
			expected: useragent.Windows,
		},
		{
			name:     "Windows 32-bit",
			ua:       "Mozilla/5.0 (Windows; U; Win32; en-US) Gecko/20100101 Firefox/3.0",
			expected: useragent.Windows,
		},
		{
			name:     "Linux with X11",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Safari/537.36",
			expected: useragent.Linux,
		},
		{
			name:     "Android reports Linux",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
			expected: useragent.Linux,
		},
		{
			name:     "macOS",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.1 Safari/605.1.15",
			expected: useragent.MacOS,
		},
		{
			name:     "Console",
			ua:       "Mozilla/5.0 (PlayStation 5 3.11) AppleWebKit/605.1.15 (KHTML, like Gecko)",
			expected: useragent.Unknown("PlayStation 5 3.11"),
		},
		{
			name:     "No parenthetical",
			ua:       "curl/7.79.1",
			expected: useragent.Unknown("Unknown"),
		},
		{
			name:     "Closing before opening",
			ua:       "Mozilla) (Windows NT 10.0; Win64",
			expected: useragent.Unknown("Unknown"),
		},
		{
			name:     "Empty UA",
			ua:       "",
			expected: useragent.Unknown("Unknown"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, useragent.ParsePlatform(tc.ua))
		})
	}
}

func TestParseDistro(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "Windows 10",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/98.0.4758.102 Safari/537.36",
			expected: "Windows 10.0",
		},
		{
			name:     "Windows 7 32-bit",
			ua:       "Mozilla/5.0 (Windows NT 6.1; Win32) Gecko/20100101 Firefox/50.0",
			expected: "Windows 6.1",
		},
		{
			name:     "Windows without NT",
			ua:       "Mozilla/5.0 (Windows; U; Win32; en-US) Gecko/20100101 Firefox/3.0",
			expected: "Windows",
		},
		{
			name:     "Windows NT without version",
			ua:       "Mozilla/5.0 (Windows NT; Win64; x64) Gecko/20100101 Firefox/50.0",
			expected: "Windows",
		},
		{
			name:     "Ubuntu",
			ua:       "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
			expected: "Ubuntu",
		},
		{
			name:     "Fedora on Wayland",
			ua:       "Mozilla/5.0 (Wayland; Fedora; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
			expected: "Fedora",
		},
		{
			name:     "Linux with X11",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Safari/537.36",
			expected: "Unknown Linux",
		},
		{
			name:     "X11 without separator",
			ua:       "Mozilla/5.0 (X11 Linux) Gecko/20100101 Firefox/89.0",
			expected: "Unknown Linux",
		},
		{
			name:     "Android",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
			expected: "Unknown Linux",
		},
		{
			name:     "macOS",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.1 Safari/605.1.15",
			expected: "Mac OS X 10.15.7",
		},
		{
			name:     "macOS Firefox keeps underscores",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7; rv:95.0) Gecko/20100101 Firefox/95.0",
			expected: "Mac OS X 10_15_7",
		},
		{
			name:     "iPhone",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			expected: "Mac OS X",
		},
		{
			name:     "Unrecognized family",
			ua:       "Mozilla/5.0 (PlayStation 5 3.11) AppleWebKit/605.1.15 (KHTML, like Gecko)",
			expected: "PlayStation 5 3.11",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			distro, err := useragent.ParseDistro(tc.ua)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, distro)
		})
	}
}

func TestParseDistroMalformed(t *testing.T) {
	for _, ua := range []string{
		"",
		"curl/7.79.1",
		"Mozilla/5.0 (Windows NT 10.0; Win64",
		"Mozilla/5.0 Windows NT 10.0) Win64",
		"Mozilla) (Windows NT 10.0; Win64",
	} {
		distro, err := useragent.ParseDistro(ua)
		require.Error(t, err, ua)
		assert.ErrorIs(t, err, useragent.ErrParsingFailed)
		assert.ErrorIs(t, err, useragent.ErrInvalidData)
		assert.Empty(t, distro)
	}
}
