// Package tweets resolves analysis input into a canonical content identity
// and fetches tweet text from the X API.
package tweets

import "context"

//go:generate mockgen -source=tweets.go -destination=../mocks/tweets/mock_fetcher.go -package=mock_tweets

// Tweet is the raw content fetched for one tweet id.
type Tweet struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// Fetcher fetches a tweet by its platform-assigned numeric id.
type Fetcher interface {
	Fetch(ctx context.Context, tweetID string) (*Tweet, error)
}
