package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/dictionary"
	"github.com/tweetlex/tweetlex/internal/inference"
	mock_dictionary "github.com/tweetlex/tweetlex/internal/mocks/dictionary"
	mock_inference "github.com/tweetlex/tweetlex/internal/mocks/inference"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

func stringPtr(s string) *string {
	return &s
}

func TestEnricher_Enrich(t *testing.T) {
	sourceText := "I went for a serene walk"

	t.Run("english word gets translation, definition and IPA", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inferenceClient := mock_inference.NewMockClient(ctrl)
		dictionaryReader := mock_dictionary.NewMockReader(ctrl)

		inferenceClient.EXPECT().Translate(gomock.Any(), inference.TranslateRequest{
			Word:           "serene",
			SourceLanguage: "EN",
			TargetLanguage: "KO",
		}).Return(inference.TranslateResponse{Translation: "고요한"}, nil)
		dictionaryReader.EXPECT().Lookup(gomock.Any(), "serene", "EN").
			Return(&dictionary.Entry{
				Word:       "serene",
				Definition: stringPtr("calm, peaceful and untroubled"),
				IPA:        stringPtr("/səˈriːn/"),
			}, nil)

		enricher := NewEnricher(inferenceClient, dictionaryReader, 2)
		extraction := ExtractionResult{
			Language: vocabulary.LanguageEN,
			Words: []CandidateWord{
				{Original: "serene", Lemma: "serene", PartOfSpeech: vocabulary.PartOfSpeechAdjective},
			},
		}
		got, err := enricher.Enrich(context.Background(), extraction, sourceText)
		require.NoError(t, err)
		assert.Equal(t, []vocabulary.EnrichedWord{
			{
				Original:     "serene",
				Lemma:        "serene",
				Language:     vocabulary.LanguageEN,
				PartOfSpeech: vocabulary.PartOfSpeechAdjective,
				Translation:  "고요한",
				Definition:   stringPtr("calm, peaceful and untroubled"),
				Pronunciation: vocabulary.Pronunciation{
					IPA: stringPtr("/səˈriːn/"),
				},
				Example: sourceText,
			},
		}, got)
	})

	t.Run("translation failure fails the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inferenceClient := mock_inference.NewMockClient(ctrl)
		dictionaryReader := mock_dictionary.NewMockReader(ctrl)

		inferenceClient.EXPECT().Translate(gomock.Any(), gomock.Any()).
			Return(inference.TranslateResponse{}, errors.New("quota exceeded")).
			MinTimes(1)
		dictionaryReader.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			AnyTimes()

		enricher := NewEnricher(inferenceClient, dictionaryReader, 2)
		extraction := ExtractionResult{
			Language: vocabulary.LanguageEN,
			Words: []CandidateWord{
				{Original: "serene", Lemma: "serene", PartOfSpeech: vocabulary.PartOfSpeechAdjective},
				{Original: "walk", Lemma: "walk", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			},
		}
		_, err := enricher.Enrich(context.Background(), extraction, sourceText)
		require.Error(t, err)
		assert.Equal(t, apperror.CodeTranslationFailed, apperror.CodeOf(err))
	})

	t.Run("dictionary failure leaves definition absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inferenceClient := mock_inference.NewMockClient(ctrl)
		dictionaryReader := mock_dictionary.NewMockReader(ctrl)

		inferenceClient.EXPECT().Translate(gomock.Any(), gomock.Any()).
			Return(inference.TranslateResponse{Translation: "산책"}, nil)
		dictionaryReader.EXPECT().Lookup(gomock.Any(), "walk", "EN").
			Return(nil, errors.New("timeout"))

		enricher := NewEnricher(inferenceClient, dictionaryReader, 1)
		extraction := ExtractionResult{
			Language: vocabulary.LanguageEN,
			Words: []CandidateWord{
				{Original: "walk", Lemma: "walk", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			},
		}
		got, err := enricher.Enrich(context.Background(), extraction, sourceText)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "산책", got[0].Translation)
		assert.Nil(t, got[0].Definition)
		assert.Nil(t, got[0].Pronunciation.IPA)
	})

	t.Run("japanese word gets transliteration in the IPA slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inferenceClient := mock_inference.NewMockClient(ctrl)
		dictionaryReader := mock_dictionary.NewMockReader(ctrl)

		inferenceClient.EXPECT().Translate(gomock.Any(), inference.TranslateRequest{
			Word:           "勉強",
			SourceLanguage: "JA",
			TargetLanguage: "KO",
		}).Return(inference.TranslateResponse{Translation: "공부"}, nil)
		dictionaryReader.EXPECT().Lookup(gomock.Any(), "勉強", "JA").
			Return(nil, nil)
		inferenceClient.EXPECT().Transliterate(gomock.Any(), inference.TransliterateRequest{
			Word:     "勉強",
			Language: "JA",
		}).Return(inference.TransliterateResponse{Transliteration: "べんきょう"}, nil)

		enricher := NewEnricher(inferenceClient, dictionaryReader, 1)
		extraction := ExtractionResult{
			Language: vocabulary.LanguageJA,
			Words: []CandidateWord{
				{Original: "勉強", Lemma: "勉強", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			},
		}
		got, err := enricher.Enrich(context.Background(), extraction, sourceText)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Pronunciation.IPA)
		assert.Equal(t, "べんきょう", *got[0].Pronunciation.IPA)
		assert.Nil(t, got[0].Pronunciation.Hangul)
	})

	t.Run("preserves extraction order under concurrency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inferenceClient := mock_inference.NewMockClient(ctrl)
		dictionaryReader := mock_dictionary.NewMockReader(ctrl)

		words := []CandidateWord{
			{Original: "alpha", Lemma: "alpha", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			{Original: "bravo", Lemma: "bravo", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			{Original: "charlie", Lemma: "charlie", PartOfSpeech: vocabulary.PartOfSpeechNoun},
			{Original: "delta", Lemma: "delta", PartOfSpeech: vocabulary.PartOfSpeechNoun},
		}
		for _, word := range words {
			inferenceClient.EXPECT().Translate(gomock.Any(), inference.TranslateRequest{
				Word:           word.Lemma,
				SourceLanguage: "EN",
				TargetLanguage: "KO",
			}).Return(inference.TranslateResponse{Translation: word.Lemma + "-ko"}, nil)
			dictionaryReader.EXPECT().Lookup(gomock.Any(), word.Lemma, "EN").Return(nil, nil)
		}

		enricher := NewEnricher(inferenceClient, dictionaryReader, 3)
		got, err := enricher.Enrich(context.Background(), ExtractionResult{
			Language: vocabulary.LanguageEN,
			Words:    words,
		}, sourceText)
		require.NoError(t, err)
		require.Len(t, got, len(words))
		for i, word := range words {
			assert.Equal(t, word.Lemma, got[i].Lemma)
			assert.Equal(t, word.Lemma+"-ko", got[i].Translation)
		}
	})
}
