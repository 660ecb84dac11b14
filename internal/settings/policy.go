package settings

import (
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// NotionState is the external sync integration's standing configuration as
// seen by the policy engine.
type NotionState struct {
	Active   bool
	AutoSync bool
}

// Decision is the auto-save outcome for one analysis.
type Decision struct {
	WordsToPersist      []vocabulary.EnrichedWord
	TriggerExternalSync bool
}

// Decide evaluates the auto-save policy. It is a pure function of its
// inputs: the same configuration and enrichment batch always yield the same
// decision, and no side effects happen here.
//
// Rules, applied in order: the caller's request flag, the user's enabled
// flag, the minimum word count, then the batch-level language filter. The
// detected language applies to the whole batch, so the filter is
// all-or-nothing.
func Decide(
	config UserSettings,
	notion NotionState,
	language vocabulary.Language,
	words []vocabulary.EnrichedWord,
	requestedAutoSave bool,
) Decision {
	if !requestedAutoSave {
		return Decision{}
	}
	if !config.AutoSaveEnabled {
		return Decision{}
	}
	if len(words) < config.AutoSaveMinWords {
		return Decision{}
	}
	if !config.HasLanguage(language) {
		return Decision{}
	}

	persisted := make([]vocabulary.EnrichedWord, len(words))
	copy(persisted, words)
	return Decision{
		WordsToPersist:      persisted,
		TriggerExternalSync: notion.Active && notion.AutoSync,
	}
}
