// Package vocabulary provides the word domain models and their repository.
package vocabulary

import (
	"fmt"
	"time"
)

// Language is a supported source language of analyzed content.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageJA Language = "JA"
	LanguageZH Language = "ZH"
)

// ParseLanguage validates a provider-reported language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEN, LanguageJA, LanguageZH:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// PartOfSpeech is the word class of a candidate word. Closed-class words
// (articles, prepositions, conjunctions, basic pronouns) are never extracted.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb    PartOfSpeech = "ADVERB"
)

// ParsePartOfSpeech validates a provider-reported part of speech, accepting
// the lowercase form the extraction provider returns.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch s {
	case "NOUN", "noun":
		return PartOfSpeechNoun, nil
	case "VERB", "verb":
		return PartOfSpeechVerb, nil
	case "ADJECTIVE", "adjective":
		return PartOfSpeechAdjective, nil
	case "ADVERB", "adverb":
		return PartOfSpeechAdverb, nil
	}
	return "", fmt.Errorf("unsupported part of speech %q", s)
}

// Status is the review lifecycle state of a saved word.
type Status string

const (
	StatusLearning Status = "LEARNING"
	StatusReview   Status = "REVIEW"
	StatusMastered Status = "MASTERED"
)

// ParseStatus validates a caller-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusLearning, StatusReview, StatusMastered:
		return Status(s), nil
	}
	return "", fmt.Errorf("unsupported status %q", s)
}

// ReviewInterval is how far in the future a word entering REVIEW is scheduled.
const ReviewInterval = 2 * 24 * time.Hour

// ReviewDateFor returns the review date for a status transition: entering
// REVIEW schedules now+2 days, any other status clears the date.
func ReviewDateFor(status Status, now time.Time) *time.Time {
	if status != StatusReview {
		return nil
	}
	d := now.Add(ReviewInterval)
	return &d
}

// Pronunciation holds the optional phonetic renderings of a word.
type Pronunciation struct {
	IPA    *string `json:"ipa"`
	Hangul *string `json:"hangul"`
}

// EnrichedWord is a candidate word with translation, definition and
// pronunciation attached. Definition and pronunciation are independently
// optional; translation is always present.
type EnrichedWord struct {
	Original      string        `json:"original"`
	Lemma         string        `json:"lemma"`
	Language      Language      `json:"language"`
	PartOfSpeech  PartOfSpeech  `json:"partOfSpeech"`
	Translation   string        `json:"translation"`
	Definition    *string       `json:"definition"`
	Pronunciation Pronunciation `json:"pronunciation"`
	// Example is always the full source text, for context-based learning.
	Example string `json:"example"`
}

// SavedWord is a persisted enriched word owned by one user.
type SavedWord struct {
	ID             string       `db:"id"`
	OwnerID        string       `db:"owner_id"`
	AnalysisID     *string      `db:"analysis_id"`
	Lemma          string       `db:"lemma"`
	Original       string       `db:"original"`
	Language       Language     `db:"language"`
	PartOfSpeech   PartOfSpeech `db:"part_of_speech"`
	Translation    string       `db:"translation"`
	Definition     *string      `db:"definition"`
	IPANotation    *string      `db:"ipa_notation"`
	HangulNotation *string      `db:"hangul_notation"`
	Example        string       `db:"example"`
	Status         Status       `db:"status"`
	SavedAt        time.Time    `db:"saved_at"`
	ReviewDate     *time.Time   `db:"review_date"`
}

// Enriched returns the enrichment view of a saved word.
func (w SavedWord) Enriched() EnrichedWord {
	return EnrichedWord{
		Original:     w.Original,
		Lemma:        w.Lemma,
		Language:     w.Language,
		PartOfSpeech: w.PartOfSpeech,
		Translation:  w.Translation,
		Definition:   w.Definition,
		Pronunciation: Pronunciation{
			IPA:    w.IPANotation,
			Hangul: w.HangulNotation,
		},
		Example: w.Example,
	}
}
