package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/tweetlex/tweetlex/internal/inference"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	model            string
	maxRetryAttempts uint
}

type Option func(*Client)

// WithBaseURL overrides the Gemini API endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.httpClient.SetBaseURL(baseURL)
	}
}

func NewClient(apiKey, model string, timeout time.Duration, retryAttempts uint, opts ...Option) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	c := &Client{
		httpClient:       client,
		apiKey:           apiKey,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client.
func (client *Client) GetModel() string {
	return client.model
}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float32 `json:"temperature,omitempty"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

func (client *Client) withRetry(ctx context.Context, call func() error) error {
	return retry.Do(
		func() error {
			if err := call(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// generateContent posts one prompt and returns the first candidate's text.
func (client *Client) generateContent(ctx context.Context, prompt string, jsonResponse bool) (string, error) {
	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
	if jsonResponse {
		requestBody.GenerationConfig = &GenerationConfig{
			ResponseMIMEType: "application/json",
		}
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", client.apiKey).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", client.model))
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	if responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("empty response body or candidates: %s", response.String())
	}
	candidate := responseBody.Candidates[0]
	if len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0].Text == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	slog.Default().Debug("gemini response content",
		"model", client.model,
		"response", candidate.Content.Parts[0].Text,
	)
	return candidate.Content.Parts[0].Text, nil
}

const wordExtractionPrompt = `You are a language learning assistant. Analyze the text and extract vocabulary suitable for language learners.

Text: "%s"

Instructions:
1. Detect the language (EN, JA, or ZH)
2. Extract important words:
   - Include: nouns, verbs, adjectives, adverbs
   - Exclude: articles (a, an, the), prepositions (in, on, at), conjunctions (and, but, or), basic pronouns (I, you, he, she, it)
   - For each word, identify its base form (lemma)
3. For hashtags, remove # and treat as regular words
4. Ignore mentions (@username), emojis, numbers, URLs

Return JSON format:
{
  "language": "EN" | "JA" | "ZH",
  "words": [
    {
      "original": "reading",
      "lemma": "read",
      "pos": "verb"
    }
  ]
}

Requirements:
- Extract 3-15 words ranked by contextual relevance
- If less than 3 suitable words exist, return fewer or an empty array
- Never pad the list with closed-class words`

// ExtractWords implements the inference.Client interface.
func (client *Client) ExtractWords(
	ctx context.Context,
	params inference.ExtractWordsRequest,
) (inference.ExtractWordsResponse, error) {
	var result inference.ExtractWordsResponse
	if err := client.withRetry(ctx, func() error {
		content, err := client.generateContent(ctx, fmt.Sprintf(wordExtractionPrompt, params.Text), true)
		if err != nil {
			return err
		}

		var decoded inference.ExtractWordsResponse
		if err := json.NewDecoder(strings.NewReader(stripCodeFences(content))).Decode(&decoded); err != nil {
			slog.Default().Error("Failed to parse Gemini extraction response as JSON",
				"response", content,
				"error", err)
			return fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
		}
		result = decoded
		return nil
	}); err != nil {
		return inference.ExtractWordsResponse{}, err
	}
	return result, nil
}

// Translate implements the inference.Client interface.
func (client *Client) Translate(
	ctx context.Context,
	params inference.TranslateRequest,
) (inference.TranslateResponse, error) {
	prompt := fmt.Sprintf(`Translate the word "%s" from %s to %s.
Provide the most common 1-2 meanings, separated by commas.
Return only the translation, no explanation.`,
		params.Word, params.SourceLanguage, params.TargetLanguage)

	var result inference.TranslateResponse
	if err := client.withRetry(ctx, func() error {
		content, err := client.generateContent(ctx, prompt, false)
		if err != nil {
			return err
		}
		result = inference.TranslateResponse{Translation: strings.TrimSpace(content)}
		return nil
	}); err != nil {
		return inference.TranslateResponse{}, err
	}
	return result, nil
}

// Transliterate implements the inference.Client interface.
func (client *Client) Transliterate(
	ctx context.Context,
	params inference.TransliterateRequest,
) (inference.TransliterateResponse, error) {
	var prompt string
	switch params.Language {
	case "JA":
		prompt = fmt.Sprintf(`Write the reading of the Japanese word "%s" in hiragana.
Return only the hiragana reading, nothing else. Example: "食べる" → "たべる"`, params.Word)
	case "ZH":
		prompt = fmt.Sprintf(`Write the pinyin pronunciation of the Chinese word "%s".
Return only the pinyin with tone marks, nothing else. Example: "你好" → "nǐ hǎo"`, params.Word)
	default:
		prompt = fmt.Sprintf(`Write the IPA pronunciation of the English word "%s".
Return only the IPA in slashes, nothing else. Example: "hello" → "/həˈloʊ/"`, params.Word)
	}

	var result inference.TransliterateResponse
	if err := client.withRetry(ctx, func() error {
		content, err := client.generateContent(ctx, prompt, false)
		if err != nil {
			return err
		}
		result = inference.TransliterateResponse{Transliteration: strings.TrimSpace(content)}
		return nil
	}); err != nil {
		return inference.TransliterateResponse{}, err
	}
	return result, nil
}

// stripCodeFences removes a markdown code fence the model sometimes wraps
// JSON responses in despite the response MIME type.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
