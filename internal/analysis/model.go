// Package analysis implements the tweet analysis pipeline: content identity
// resolution, word extraction, enrichment, caching and auto-save.
package analysis

import (
	"time"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// NormalizedSource is the canonical identity of one piece of analyzed
// content. Immutable once created.
type NormalizedSource struct {
	ContentKey string
	RawText    string
	SourceURL  *string
	AuthorRef  *string
}

// CandidateWord is one extraction candidate: the surface form as it appeared
// in the source text plus its dictionary base form.
type CandidateWord struct {
	Original     string
	Lemma        string
	PartOfSpeech vocabulary.PartOfSpeech
}

// ExtractionResult is the outcome of word extraction for one text.
// Words holds 3 to 15 candidates; fewer than 3 is a terminal failure
// surfaced before an ExtractionResult is built.
type ExtractionResult struct {
	Language vocabulary.Language
	Words    []CandidateWord
	// Degraded marks results produced by the heuristic fallback extractor
	// instead of the generative provider.
	Degraded bool
}

// Analysis is one persisted analysis, unique per (owner, content key).
type Analysis struct {
	ID         string              `db:"id"`
	OwnerID    string              `db:"owner_id"`
	ContentKey string              `db:"content_key"`
	SourceURL  *string             `db:"source_url"`
	RawText    string              `db:"raw_text"`
	AuthorRef  *string             `db:"author_ref"`
	Language   vocabulary.Language `db:"language"`
	AnalyzedAt time.Time           `db:"analyzed_at"`

	// Words are the full enriched batch stored with this analysis, loaded
	// separately from the analysis_words table. The batch is persisted
	// regardless of the auto-save outcome so a cache hit reproduces the
	// first computed enrichment.
	Words []AnalysisWord `db:"-"`
}

// AnalysisWord is one enriched word as stored with its analysis, in
// extraction order.
type AnalysisWord struct {
	AnalysisID     string                  `db:"analysis_id"`
	Position       int                     `db:"position"`
	Original       string                  `db:"original"`
	Lemma          string                  `db:"lemma"`
	Language       vocabulary.Language     `db:"language"`
	PartOfSpeech   vocabulary.PartOfSpeech `db:"part_of_speech"`
	Translation    string                  `db:"translation"`
	Definition     *string                 `db:"definition"`
	IPANotation    *string                 `db:"ipa_notation"`
	HangulNotation *string                 `db:"hangul_notation"`
	Example        string                  `db:"example"`
}

// NewAnalysisWords maps an enriched batch onto analysis word rows.
func NewAnalysisWords(analysisID string, words []vocabulary.EnrichedWord) []AnalysisWord {
	rows := make([]AnalysisWord, 0, len(words))
	for i, word := range words {
		rows = append(rows, AnalysisWord{
			AnalysisID:     analysisID,
			Position:       i,
			Original:       word.Original,
			Lemma:          word.Lemma,
			Language:       word.Language,
			PartOfSpeech:   word.PartOfSpeech,
			Translation:    word.Translation,
			Definition:     word.Definition,
			IPANotation:    word.Pronunciation.IPA,
			HangulNotation: word.Pronunciation.Hangul,
			Example:        word.Example,
		})
	}
	return rows
}

// Enriched returns the enrichment view of an analysis word.
func (w AnalysisWord) Enriched() vocabulary.EnrichedWord {
	return vocabulary.EnrichedWord{
		Original:     w.Original,
		Lemma:        w.Lemma,
		Language:     w.Language,
		PartOfSpeech: w.PartOfSpeech,
		Translation:  w.Translation,
		Definition:   w.Definition,
		Pronunciation: vocabulary.Pronunciation{
			IPA:    w.IPANotation,
			Hangul: w.HangulNotation,
		},
		Example: w.Example,
	}
}
