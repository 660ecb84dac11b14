package vocabulary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	for _, valid := range []string{"EN", "JA", "ZH"} {
		got, err := ParseLanguage(valid)
		require.NoError(t, err)
		assert.Equal(t, Language(valid), got)
	}
	for _, invalid := range []string{"", "en", "FR", "KO"} {
		_, err := ParseLanguage(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestParsePartOfSpeech(t *testing.T) {
	testCases := []struct {
		input string
		want  PartOfSpeech
	}{
		{input: "NOUN", want: PartOfSpeechNoun},
		{input: "noun", want: PartOfSpeechNoun},
		{input: "verb", want: PartOfSpeechVerb},
		{input: "adjective", want: PartOfSpeechAdjective},
		{input: "ADVERB", want: PartOfSpeechAdverb},
	}
	for _, tc := range testCases {
		got, err := ParsePartOfSpeech(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, invalid := range []string{"", "article", "preposition", "pronoun"} {
		_, err := ParsePartOfSpeech(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"LEARNING", "REVIEW", "MASTERED"} {
		got, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}
	_, err := ParseStatus("learning")
	assert.Error(t, err)
}

func TestReviewDateFor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("entering review schedules two days out", func(t *testing.T) {
		got := ReviewDateFor(StatusReview, now)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC), *got)
	})

	t.Run("other statuses clear the date", func(t *testing.T) {
		assert.Nil(t, ReviewDateFor(StatusLearning, now))
		assert.Nil(t, ReviewDateFor(StatusMastered, now))
	})
}

func TestSavedWord_Enriched(t *testing.T) {
	ipa := "/səˈriːn/"
	definition := "calm and peaceful"
	word := SavedWord{
		ID:           "word-1",
		OwnerID:      "owner-1",
		Lemma:        "serene",
		Original:     "serene",
		Language:     LanguageEN,
		PartOfSpeech: PartOfSpeechAdjective,
		Translation:  "고요한",
		Definition:   &definition,
		IPANotation:  &ipa,
		Example:      "a serene walk",
		Status:       StatusLearning,
	}

	got := word.Enriched()
	assert.Equal(t, EnrichedWord{
		Original:     "serene",
		Lemma:        "serene",
		Language:     LanguageEN,
		PartOfSpeech: PartOfSpeechAdjective,
		Translation:  "고요한",
		Definition:   &definition,
		Pronunciation: Pronunciation{
			IPA: &ipa,
		},
		Example: "a serene walk",
	}, got)
}
