// Package freedict implements dictionary lookups against the Free
// Dictionary API (dictionaryapi.dev).
package freedict

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tweetlex/tweetlex/internal/dictionary"
)

type Reader struct {
	httpClient *resty.Client
}

func NewReader(baseURL string, timeout time.Duration) *Reader {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	return &Reader{httpClient: client}
}

// Lookup implements dictionary.Reader. The Free Dictionary API only supports
// English; any other language is a miss.
func (r *Reader) Lookup(ctx context.Context, word string, language string) (*dictionary.Entry, error) {
	if language != "EN" {
		return nil, nil
	}

	var responses []Response
	res, err := r.httpClient.R().
		SetContext(ctx).
		SetResult(&responses).
		Get(fmt.Sprintf("/api/v2/entries/en/%s", strings.ToLower(word)))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	// The API answers 404 for unknown words. That is a miss, not a failure.
	if res.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}
	if len(responses) == 0 {
		return nil, nil
	}

	return fromResponse(word, responses[0]), nil
}

func fromResponse(word string, res Response) *dictionary.Entry {
	entry := &dictionary.Entry{Word: word}

	if len(res.Meanings) > 0 && len(res.Meanings[0].Definitions) > 0 {
		definition := res.Meanings[0].Definitions[0].Definition
		entry.Definition = &definition
	}

	if res.Phonetic != "" {
		ipa := res.Phonetic
		entry.IPA = &ipa
	}
	for _, phonetic := range res.Phonetics {
		if phonetic.Audio == "" {
			continue
		}
		audio := phonetic.Audio
		entry.AudioURL = &audio
		if phonetic.Text != "" {
			ipa := phonetic.Text
			entry.IPA = &ipa
		}
		break
	}
	if entry.IPA == nil && len(res.Phonetics) > 0 && res.Phonetics[0].Text != "" {
		ipa := res.Phonetics[0].Text
		entry.IPA = &ipa
	}

	return entry
}
