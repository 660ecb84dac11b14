package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for generative language operations.
type Client interface {
	ExtractWords(ctx context.Context, params ExtractWordsRequest) (ExtractWordsResponse, error)
	Translate(ctx context.Context, params TranslateRequest) (TranslateResponse, error)
	Transliterate(ctx context.Context, params TransliterateRequest) (TransliterateResponse, error)
}

// ExtractWordsRequest holds the source text to extract vocabulary from.
type ExtractWordsRequest struct {
	Text string `json:"text"`
}

// ExtractedWord is one candidate word as reported by the provider.
type ExtractedWord struct {
	Original string `json:"original"`
	Lemma    string `json:"lemma"`
	POS      string `json:"pos"`
}

// ExtractWordsResponse is the provider's detection and extraction result.
// Language is one of EN, JA, ZH. Words are ranked by contextual relevance.
type ExtractWordsResponse struct {
	Language string          `json:"language"`
	Words    []ExtractedWord `json:"words"`
}

// TranslateRequest asks for the most common 1-2 meanings of a word.
type TranslateRequest struct {
	Word           string
	SourceLanguage string
	TargetLanguage string
}

type TranslateResponse struct {
	Translation string
}

// TransliterateRequest asks for a phonetic rendering of a word: hiragana
// reading for Japanese, pinyin for Chinese, IPA for English.
type TransliterateRequest struct {
	Word     string
	Language string
}

type TransliterateResponse struct {
	Transliteration string
}

const (
	DefaultMaxRetryAttempts = 3
)
