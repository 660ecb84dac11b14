package tweets

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// Accepted tweet URL shapes. The numeric status id is the content identity.
var tweetURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`twitter\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`x\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`/status/(\d+)`),
}

// textKeyPrefix keeps raw-text content keys disjoint from numeric tweet ids.
const textKeyPrefix = "tv-"

// ExtractTweetID parses the platform-assigned numeric id from a tweet URL.
// It returns an empty string when no accepted pattern matches.
func ExtractTweetID(url string) string {
	for _, pattern := range tweetURLPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// NewTextContentKey generates a fresh opaque content key for a raw-text
// submission. Raw-text submissions are never deduplicated against each other.
func NewTextContentKey() string {
	return fmt.Sprintf("%s%s", textKeyPrefix, uuid.NewString())
}
