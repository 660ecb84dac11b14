package notion

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// Client implements Syncer against the Notion REST API.
type Client struct {
	httpClient    *resty.Client
	repository    Repository
	notionVersion string
	now           func() time.Time
}

func NewClient(baseURL, notionVersion string, timeout time.Duration, repository Repository) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	return &Client{
		httpClient:    httpClient,
		repository:    repository,
		notionVersion: notionVersion,
		now:           time.Now,
	}
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
}

type queryFilter struct {
	Property string      `json:"property"`
	Title    titleEquals `json:"title"`
}

type titleEquals struct {
	Equals string `json:"equals"`
}

type queryResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// UpsertWordRecord queries the user's database by the word title and updates
// the existing page or creates a new one.
func (c *Client) UpsertWordRecord(ctx context.Context, ownerID string, word vocabulary.EnrichedWord, sourceURL *string) error {
	integration, err := c.repository.Find(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("repository.Find > %w", err)
	}
	if integration == nil || !integration.IsActive || integration.DatabaseID == "" {
		return fmt.Errorf("notion is not connected for this user")
	}

	var query queryResponse
	res, err := c.request(integration.AccessToken).
		SetContext(ctx).
		SetBody(queryRequest{
			Filter: queryFilter{
				Property: "단어",
				Title:    titleEquals{Equals: word.Lemma},
			},
		}).
		SetResult(&query).
		Post(fmt.Sprintf("/v1/databases/%s/query", integration.DatabaseID))
	if err != nil {
		return fmt.Errorf("httpClient.Post(query) > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("query status code: %d, body: %s", res.StatusCode(), res.String())
	}

	if len(query.Results) > 0 {
		if err := c.updatePage(ctx, integration.AccessToken, query.Results[0].ID, word); err != nil {
			return err
		}
	} else {
		if err := c.createPage(ctx, integration.AccessToken, integration.DatabaseID, word, sourceURL); err != nil {
			return err
		}
	}

	if err := c.repository.UpdateLastSync(ctx, ownerID, c.now()); err != nil {
		return fmt.Errorf("repository.UpdateLastSync > %w", err)
	}
	return nil
}

func (c *Client) request(accessToken string) *resty.Request {
	return c.httpClient.R().
		SetHeader("Authorization", "Bearer "+accessToken).
		SetHeader("Notion-Version", c.notionVersion).
		SetHeader("Content-Type", "application/json")
}

func richText(content string) map[string]interface{} {
	return map[string]interface{}{
		"rich_text": []map[string]interface{}{
			{"text": map[string]string{"content": content}},
		},
	}
}

func (c *Client) updatePage(ctx context.Context, accessToken, pageID string, word vocabulary.EnrichedWord) error {
	properties := map[string]interface{}{
		"뜻":  richText(word.Translation),
		"예문": richText(word.Example),
	}
	if word.Pronunciation.IPA != nil {
		properties["발음"] = richText(*word.Pronunciation.IPA)
	} else {
		properties["발음"] = map[string]interface{}{"rich_text": []map[string]interface{}{}}
	}

	res, err := c.request(accessToken).
		SetContext(ctx).
		SetBody(map[string]interface{}{"properties": properties}).
		Patch(fmt.Sprintf("/v1/pages/%s", pageID))
	if err != nil {
		return fmt.Errorf("httpClient.Patch(page) > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("update status code: %d, body: %s", res.StatusCode(), res.String())
	}
	return nil
}

func (c *Client) createPage(ctx context.Context, accessToken, databaseID string, word vocabulary.EnrichedWord, sourceURL *string) error {
	properties := map[string]interface{}{
		"단어": map[string]interface{}{
			"title": []map[string]interface{}{
				{"text": map[string]string{"content": word.Lemma}},
			},
		},
		"뜻":  richText(word.Translation),
		"예문": richText(word.Example),
		"언어": map[string]interface{}{
			"select": map[string]string{"name": languageName(word.Language)},
		},
		"품사": map[string]interface{}{
			"select": map[string]string{"name": partOfSpeechName(word.PartOfSpeech)},
		},
		"학습 날짜": map[string]interface{}{
			"date": map[string]string{"start": c.now().Format(time.RFC3339)},
		},
		"상태": map[string]interface{}{
			"select": map[string]string{"name": "학습중"},
		},
	}
	if word.Pronunciation.IPA != nil {
		properties["발음"] = richText(*word.Pronunciation.IPA)
	}
	if sourceURL != nil {
		properties["출처"] = map[string]interface{}{"url": *sourceURL}
	}

	res, err := c.request(accessToken).
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"parent":     map[string]string{"database_id": databaseID},
			"properties": properties,
		}).
		Post("/v1/pages")
	if err != nil {
		return fmt.Errorf("httpClient.Post(page) > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("create status code: %d, body: %s", res.StatusCode(), res.String())
	}
	return nil
}

func languageName(language vocabulary.Language) string {
	switch language {
	case vocabulary.LanguageEN:
		return "영어"
	case vocabulary.LanguageJA:
		return "일본어"
	case vocabulary.LanguageZH:
		return "중국어"
	}
	return string(language)
}

func partOfSpeechName(pos vocabulary.PartOfSpeech) string {
	switch pos {
	case vocabulary.PartOfSpeechNoun:
		return "명사"
	case vocabulary.PartOfSpeechVerb:
		return "동사"
	case vocabulary.PartOfSpeechAdjective:
		return "형용사"
	case vocabulary.PartOfSpeechAdverb:
		return "부사"
	}
	return string(pos)
}
