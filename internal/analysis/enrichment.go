package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/dictionary"
	"github.com/tweetlex/tweetlex/internal/inference"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// enrichmentTargetLanguage is the translation target for every word.
const enrichmentTargetLanguage = "KO"

// Enricher attaches translation, definition and pronunciation to extraction
// candidates. Translation is mandatory; definition and pronunciation are
// independently optional and their provider failures never fail a word.
type Enricher struct {
	inferenceClient  inference.Client
	dictionaryReader dictionary.Reader
	// concurrency bounds the fan-out across words to respect upstream
	// provider rate limits.
	concurrency int
}

func NewEnricher(inferenceClient inference.Client, dictionaryReader dictionary.Reader, concurrency int) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{
		inferenceClient:  inferenceClient,
		dictionaryReader: dictionaryReader,
		concurrency:      concurrency,
	}
}

// Enrich enriches every candidate, preserving input order one-to-one.
// A translation failure fails the whole batch: translation is advertised as
// always present, so a word must never be silently dropped or left bare.
func (e *Enricher) Enrich(ctx context.Context, extraction ExtractionResult, sourceText string) ([]vocabulary.EnrichedWord, error) {
	enriched := make([]vocabulary.EnrichedWord, len(extraction.Words))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for i, candidate := range extraction.Words {
		i, candidate := i, candidate
		group.Go(func() error {
			word, err := e.enrichWord(groupCtx, candidate, extraction.Language, sourceText)
			if err != nil {
				return err
			}
			enriched[i] = word
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// enrichWord runs the three lookups for one candidate concurrently.
func (e *Enricher) enrichWord(
	ctx context.Context,
	candidate CandidateWord,
	language vocabulary.Language,
	sourceText string,
) (vocabulary.EnrichedWord, error) {
	word := vocabulary.EnrichedWord{
		Original:     candidate.Original,
		Lemma:        candidate.Lemma,
		Language:     language,
		PartOfSpeech: candidate.PartOfSpeech,
		Example:      sourceText,
	}

	// The lookups write disjoint fields: translation, definition plus
	// dictionary IPA (EN only), and transliteration (JA/ZH only).
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		response, err := e.inferenceClient.Translate(groupCtx, inference.TranslateRequest{
			Word:           candidate.Lemma,
			SourceLanguage: string(language),
			TargetLanguage: enrichmentTargetLanguage,
		})
		if err != nil {
			return apperror.Wrap(apperror.CodeTranslationFailed, "translation failed",
				fmt.Errorf("inferenceClient.Translate(%s) > %w", candidate.Lemma, err))
		}
		word.Translation = response.Translation
		return nil
	})

	group.Go(func() error {
		entry, err := e.dictionaryReader.Lookup(groupCtx, candidate.Lemma, string(language))
		if err != nil {
			// Definition and dictionary pronunciation are optional. A miss
			// or provider failure leaves them absent.
			slog.Default().Debug("dictionary lookup failed",
				"word", candidate.Lemma, "error", err)
			return nil
		}
		if entry == nil {
			return nil
		}
		word.Definition = entry.Definition
		word.Pronunciation.IPA = entry.IPA
		return nil
	})

	if language == vocabulary.LanguageJA || language == vocabulary.LanguageZH {
		group.Go(func() error {
			response, err := e.inferenceClient.Transliterate(groupCtx, inference.TransliterateRequest{
				Word:     candidate.Lemma,
				Language: string(language),
			})
			if err != nil {
				slog.Default().Debug("transliteration failed",
					"word", candidate.Lemma, "error", err)
				return nil
			}
			if response.Transliteration != "" {
				transliteration := response.Transliteration
				word.Pronunciation.IPA = &transliteration
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return vocabulary.EnrichedWord{}, err
	}
	return word, nil
}
