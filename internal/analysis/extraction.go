package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/inference"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

const (
	// MinExtractedWords is the minimum number of candidates for content to
	// be considered learnable. Fewer is a terminal INSUFFICIENT_WORDS
	// failure, never padded.
	MinExtractedWords = 3
	// MaxExtractedWords caps the candidate list.
	MaxExtractedWords = 15
)

// ExtractionService turns raw text into extraction candidates via the
// generative provider, with an optional, explicitly gated heuristic fallback.
type ExtractionService struct {
	client inference.Client
	// fallbackEnabled substitutes the deterministic heuristic extractor when
	// the provider is unreachable. The substitution is logged and the result
	// marked degraded so it is never conflated with genuine extraction.
	fallbackEnabled bool
}

func NewExtractionService(client inference.Client, fallbackEnabled bool) *ExtractionService {
	return &ExtractionService{
		client:          client,
		fallbackEnabled: fallbackEnabled,
	}
}

// Extract detects the source language and selects 3-15 content words.
func (s *ExtractionService) Extract(ctx context.Context, rawText string) (ExtractionResult, error) {
	response, err := s.client.ExtractWords(ctx, inference.ExtractWordsRequest{Text: rawText})
	if err != nil {
		if !s.fallbackEnabled {
			return ExtractionResult{}, apperror.Wrap(apperror.CodeExtractionFailed, "word extraction failed", fmt.Errorf("client.ExtractWords > %w", err))
		}
		slog.Default().Warn("extraction provider unreachable, using heuristic fallback",
			"error", err)
		return s.fallbackExtract(rawText)
	}

	language, err := vocabulary.ParseLanguage(response.Language)
	if err != nil {
		return ExtractionResult{}, apperror.Wrap(apperror.CodeLanguageDetectionFailed, "could not detect the source language", err)
	}

	words := make([]CandidateWord, 0, len(response.Words))
	for _, word := range response.Words {
		pos, err := vocabulary.ParsePartOfSpeech(word.POS)
		if err != nil {
			// Provider noise. Closed-class or unknown tags are dropped, not
			// surfaced.
			slog.Default().Debug("dropping extracted word with unsupported part of speech",
				"word", word.Lemma, "pos", word.POS)
			continue
		}
		if word.Lemma == "" || word.Original == "" {
			continue
		}
		words = append(words, CandidateWord{
			Original:     word.Original,
			Lemma:        word.Lemma,
			PartOfSpeech: pos,
		})
	}

	if len(words) < MinExtractedWords {
		return ExtractionResult{}, apperror.New(apperror.CodeInsufficientWords, "Not enough words to learn")
	}
	if len(words) > MaxExtractedWords {
		words = words[:MaxExtractedWords]
	}

	return ExtractionResult{
		Language: language,
		Words:    words,
	}, nil
}

func (s *ExtractionService) fallbackExtract(rawText string) (ExtractionResult, error) {
	words := HeuristicExtract(rawText, heuristicWordLimit)
	if len(words) < MinExtractedWords {
		return ExtractionResult{}, apperror.New(apperror.CodeInsufficientWords, "Not enough words to learn")
	}
	return ExtractionResult{
		Language: vocabulary.LanguageEN,
		Words:    words,
		Degraded: true,
	}, nil
}
