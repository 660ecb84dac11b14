package tweets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTweetID(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "twitter.com status URL",
			url:  "https://twitter.com/someone/status/1234567890",
			want: "1234567890",
		},
		{
			name: "x.com status URL",
			url:  "https://x.com/someone/status/9876543210",
			want: "9876543210",
		},
		{
			name: "status path without a known host",
			url:  "https://mobile.twitter.com/a_user/status/42?s=20",
			want: "42",
		},
		{
			name: "non-tweet URL",
			url:  "https://example.com/articles/123",
			want: "",
		},
		{
			name: "status path without a numeric id",
			url:  "https://x.com/someone/status/abc",
			want: "",
		},
		{
			name: "empty string",
			url:  "",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractTweetID(tc.url))
		})
	}
}

func TestNewTextContentKey(t *testing.T) {
	first := NewTextContentKey()
	second := NewTextContentKey()

	assert.True(t, strings.HasPrefix(first, "tv-"))
	assert.True(t, strings.HasPrefix(second, "tv-"))
	// Raw-text submissions are never deduplicated, so keys must be unique.
	assert.NotEqual(t, first, second)
}
