package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

func makeEnrichedWords(count int) []vocabulary.EnrichedWord {
	words := make([]vocabulary.EnrichedWord, count)
	for i := range words {
		words[i] = vocabulary.EnrichedWord{
			Lemma:       "word",
			Language:    vocabulary.LanguageEN,
			Translation: "단어",
		}
	}
	return words
}

func TestDecide(t *testing.T) {
	enabledConfig := UserSettings{
		OwnerID:           "owner-1",
		AutoSaveEnabled:   true,
		AutoSaveLanguages: "EN,JA",
		AutoSaveMinWords:  3,
	}

	testCases := []struct {
		name          string
		config        UserSettings
		notion        NotionState
		language      vocabulary.Language
		words         []vocabulary.EnrichedWord
		requested     bool
		wantPersisted int
		wantSync      bool
	}{
		{
			name:      "not requested never persists",
			config:    enabledConfig,
			language:  vocabulary.LanguageEN,
			words:     makeEnrichedWords(5),
			requested: false,
		},
		{
			name: "disabled config never persists even when requested",
			config: UserSettings{
				AutoSaveEnabled:   false,
				AutoSaveLanguages: "EN",
				AutoSaveMinWords:  1,
			},
			language:  vocabulary.LanguageEN,
			words:     makeEnrichedWords(5),
			requested: true,
		},
		{
			name:      "below the minimum word count",
			config:    enabledConfig,
			language:  vocabulary.LanguageEN,
			words:     makeEnrichedWords(2),
			requested: true,
		},
		{
			name:          "exactly the minimum word count persists",
			config:        enabledConfig,
			language:      vocabulary.LanguageEN,
			words:         makeEnrichedWords(3),
			requested:     true,
			wantPersisted: 3,
		},
		{
			name:      "language outside the target set",
			config:    enabledConfig,
			language:  vocabulary.LanguageZH,
			words:     makeEnrichedWords(5),
			requested: true,
		},
		{
			name:          "active integration with auto-sync triggers sync",
			config:        enabledConfig,
			notion:        NotionState{Active: true, AutoSync: true},
			language:      vocabulary.LanguageJA,
			words:         makeEnrichedWords(4),
			requested:     true,
			wantPersisted: 4,
			wantSync:      true,
		},
		{
			name:          "active integration without auto-sync persists only",
			config:        enabledConfig,
			notion:        NotionState{Active: true, AutoSync: false},
			language:      vocabulary.LanguageEN,
			words:         makeEnrichedWords(4),
			requested:     true,
			wantPersisted: 4,
		},
		{
			name:          "inactive integration never syncs",
			config:        enabledConfig,
			notion:        NotionState{Active: false, AutoSync: true},
			language:      vocabulary.LanguageEN,
			words:         makeEnrichedWords(4),
			requested:     true,
			wantPersisted: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.config, tc.notion, tc.language, tc.words, tc.requested)
			assert.Len(t, got.WordsToPersist, tc.wantPersisted)
			assert.Equal(t, tc.wantSync, got.TriggerExternalSync)
		})
	}
}

func TestDecide_IsPure(t *testing.T) {
	config := UserSettings{
		AutoSaveEnabled:   true,
		AutoSaveLanguages: "EN",
		AutoSaveMinWords:  1,
	}
	words := makeEnrichedWords(2)

	first := Decide(config, NotionState{}, vocabulary.LanguageEN, words, true)
	second := Decide(config, NotionState{}, vocabulary.LanguageEN, words, true)
	assert.Equal(t, first, second)

	// The decision copies the batch; mutating it never reaches the input.
	first.WordsToPersist[0].Lemma = "mutated"
	assert.Equal(t, "word", words[0].Lemma)
}

func TestUserSettings_Languages(t *testing.T) {
	testCases := []struct {
		name   string
		stored string
		want   []vocabulary.Language
	}{
		{
			name:   "parses the stored set",
			stored: "EN,JA,ZH",
			want:   []vocabulary.Language{vocabulary.LanguageEN, vocabulary.LanguageJA, vocabulary.LanguageZH},
		},
		{
			name:   "tolerates spaces and unknown entries",
			stored: "EN, XX ,JA",
			want:   []vocabulary.Language{vocabulary.LanguageEN, vocabulary.LanguageJA},
		},
		{
			name:   "empty set",
			stored: "",
			want:   nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := UserSettings{AutoSaveLanguages: tc.stored}
			assert.Equal(t, tc.want, s.Languages())
		})
	}
}

func TestJoinLanguages(t *testing.T) {
	assert.Equal(t, "EN,ZH", JoinLanguages([]vocabulary.Language{vocabulary.LanguageEN, vocabulary.LanguageZH}))
	assert.Equal(t, "", JoinLanguages(nil))
}
