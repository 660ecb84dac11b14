package freedict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Lookup(t *testing.T) {
	t.Run("returns definition, IPA and audio", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/entries/en/serene", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"word": "serene",
				"phonetic": "/səˈɹiːn/",
				"phonetics": [
					{"text": "/səˈɹiːn/", "audio": "https://api.example.com/serene.mp3"}
				],
				"meanings": [
					{
						"partOfSpeech": "adjective",
						"definitions": [
							{"definition": "Calm, peaceful and untroubled."},
							{"definition": "Fair and unclouded."}
						]
					}
				]
			}]`))
		}))
		defer server.Close()

		reader := NewReader(server.URL, 5*time.Second)
		entry, err := reader.Lookup(context.Background(), "Serene", "EN")
		require.NoError(t, err)
		require.NotNil(t, entry)

		assert.Equal(t, "Serene", entry.Word)
		require.NotNil(t, entry.Definition)
		assert.Equal(t, "Calm, peaceful and untroubled.", *entry.Definition)
		require.NotNil(t, entry.IPA)
		assert.Equal(t, "/səˈɹiːn/", *entry.IPA)
		require.NotNil(t, entry.AudioURL)
		assert.Equal(t, "https://api.example.com/serene.mp3", *entry.AudioURL)
	})

	t.Run("unknown word is a miss, not a failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
		}))
		defer server.Close()

		reader := NewReader(server.URL, 5*time.Second)
		entry, err := reader.Lookup(context.Background(), "qwzxy", "EN")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("non-english languages are unsupported misses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("the provider must not be called for unsupported languages")
		}))
		defer server.Close()

		reader := NewReader(server.URL, 5*time.Second)
		for _, language := range []string{"JA", "ZH"} {
			entry, err := reader.Lookup(context.Background(), "勉強", language)
			require.NoError(t, err)
			assert.Nil(t, entry)
		}
	})

	t.Run("server errors are failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		reader := NewReader(server.URL, 5*time.Second)
		_, err := reader.Lookup(context.Background(), "serene", "EN")
		assert.Error(t, err)
	})

	t.Run("entry without phonetics has no IPA", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"word": "walk",
				"meanings": [
					{"partOfSpeech": "noun", "definitions": [{"definition": "A trip made by walking."}]}
				]
			}]`))
		}))
		defer server.Close()

		reader := NewReader(server.URL, 5*time.Second)
		entry, err := reader.Lookup(context.Background(), "walk", "EN")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Nil(t, entry.IPA)
		assert.Nil(t, entry.AudioURL)
	})
}
