package analysis

import (
	"strings"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// heuristicWordLimit caps fallback extraction.
const heuristicWordLimit = 10

// heuristicStopWords is the fixed closed-class list dropped by the fallback
// extractor.
var heuristicStopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {},
}

// HeuristicExtract is the deterministic, auditable fallback extractor:
// tokenize on whitespace, strip non-letters, drop stop words, keep the first
// limit survivors. It never detects language or lemmatizes; every token is
// tagged as a noun in lowercase lemma form.
func HeuristicExtract(text string, limit int) []CandidateWord {
	words := make([]CandidateWord, 0, limit)
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "@") || strings.HasPrefix(token, "http") {
			continue
		}
		clean := stripNonLetters(strings.TrimPrefix(token, "#"))
		if len(clean) <= 2 {
			continue
		}
		lower := strings.ToLower(clean)
		if _, ok := heuristicStopWords[lower]; ok {
			continue
		}
		words = append(words, CandidateWord{
			Original:     clean,
			Lemma:        lower,
			PartOfSpeech: vocabulary.PartOfSpeechNoun,
		})
		if len(words) == limit {
			break
		}
	}
	return words
}

func stripNonLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
