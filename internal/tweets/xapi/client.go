// Package xapi implements the tweets.Fetcher boundary against the X API v2.
package xapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/tweets"
)

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL, bearerToken string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Authorization", "Bearer "+bearerToken)
	return &Client{httpClient: client}
}

type tweetResponse struct {
	Data tweets.Tweet `json:"data"`
}

// Fetch implements tweets.Fetcher. Provider failures map to the taxonomy:
// 404 not found, 403 private, 401 credential misconfiguration, and credit
// exhaustion or rate limiting surface as PROVIDER_UNAVAILABLE rather than
// being papered over with substitute content.
func (c *Client) Fetch(ctx context.Context, tweetID string) (*tweets.Tweet, error) {
	var response tweetResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("tweet.fields", "author_id,created_at").
		SetResult(&response).
		Get(fmt.Sprintf("/2/tweets/%s", tweetID))
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeProviderUnavailable, "tweet provider unreachable", fmt.Errorf("httpClient.Get > %w", err))
	}

	switch res.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, apperror.New(apperror.CodeTweetNotFound, "Tweet not found or unavailable")
	case http.StatusForbidden:
		return nil, apperror.New(apperror.CodeTweetPrivate, "This tweet is private")
	case http.StatusUnauthorized:
		return nil, apperror.New(apperror.CodeXAPIUnauthorized, "X API credentials are not configured correctly")
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		return nil, apperror.New(apperror.CodeProviderUnavailable, "Tweet provider is temporarily unavailable")
	default:
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to fetch tweet",
			fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String()))
	}

	if response.Data.ID == "" {
		return nil, apperror.New(apperror.CodeTweetNotFound, "Tweet not found or unavailable")
	}
	tweet := response.Data
	return &tweet, nil
}
