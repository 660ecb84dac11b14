// Package dictionary defines the dictionary lookup boundary. The backing
// provider supports English only; lookups for other languages are a miss,
// never an error.
package dictionary

import "context"

//go:generate mockgen -source=dictionary.go -destination=../mocks/dictionary/mock_reader.go -package=mock_dictionary

// Entry is one dictionary result. All fields besides Word are optional.
type Entry struct {
	Word       string
	Definition *string
	IPA        *string
	AudioURL   *string
}

// Reader looks up a word in the dictionary provider. A nil Entry with a nil
// error means the word was not found or the language is unsupported.
type Reader interface {
	Lookup(ctx context.Context, word string, language string) (*Entry, error)
}
