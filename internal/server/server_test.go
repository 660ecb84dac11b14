package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

const testJWTSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeWordRepository struct {
	words       map[string]*vocabulary.SavedWord
	listResult  []vocabulary.SavedWord
	listTotal   int
	listFilter  vocabulary.ListFilter
	created     []vocabulary.SavedWord
	updateCount int64
	deleteCount int64
	batchCount  int64
	batchIDs    []string
	batchCalled bool
}

func newFakeWordRepository() *fakeWordRepository {
	return &fakeWordRepository{words: map[string]*vocabulary.SavedWord{}}
}

func (r *fakeWordRepository) CreateBatch(ctx context.Context, words []vocabulary.SavedWord) error {
	r.created = append(r.created, words...)
	return nil
}

func (r *fakeWordRepository) FindByID(ctx context.Context, ownerID, id string) (*vocabulary.SavedWord, error) {
	word, ok := r.words[id]
	if !ok || word.OwnerID != ownerID {
		return nil, nil
	}
	return word, nil
}

func (r *fakeWordRepository) List(ctx context.Context, ownerID string, filter vocabulary.ListFilter) ([]vocabulary.SavedWord, int, error) {
	r.listFilter = filter
	return r.listResult, r.listTotal, nil
}

func (r *fakeWordRepository) UpdateStatus(ctx context.Context, ownerID, id string, status vocabulary.Status, reviewDate *time.Time) (int64, error) {
	if word, ok := r.words[id]; ok && word.OwnerID == ownerID {
		word.Status = status
		word.ReviewDate = reviewDate
	}
	return r.updateCount, nil
}

func (r *fakeWordRepository) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	return r.deleteCount, nil
}

func (r *fakeWordRepository) DeleteBatch(ctx context.Context, ownerID string, ids []string) (int64, error) {
	r.batchCalled = true
	r.batchIDs = ids
	return r.batchCount, nil
}

type fakeSettingsRepository struct {
	settings settings.UserSettings
	saved    *settings.UserSettings
}

func (r *fakeSettingsRepository) GetOrCreate(ctx context.Context, ownerID string) (*settings.UserSettings, error) {
	stored := r.settings
	stored.OwnerID = ownerID
	return &stored, nil
}

func (r *fakeSettingsRepository) Save(ctx context.Context, s *settings.UserSettings) error {
	r.saved = s
	return nil
}

type fakeSyncer struct {
	synced []vocabulary.EnrichedWord
	err    error
}

func (s *fakeSyncer) UpsertWordRecord(ctx context.Context, ownerID string, word vocabulary.EnrichedWord, sourceURL *string) error {
	if s.err != nil {
		return s.err
	}
	s.synced = append(s.synced, word)
	return nil
}

type serverFixture struct {
	words        *fakeWordRepository
	settingsRepo *fakeSettingsRepository
	syncer       *fakeSyncer
	handler      http.Handler
}

func newServerFixture(t *testing.T, service *analysis.Service) *serverFixture {
	t.Helper()
	fixture := &serverFixture{
		words:        newFakeWordRepository(),
		settingsRepo: &fakeSettingsRepository{settings: settings.DefaultUserSettings("owner-1")},
		syncer:       &fakeSyncer{},
	}
	srv := New(testJWTSecret, []string{"http://localhost:3000"}, service, fixture.words, fixture.settingsRepo, fixture.syncer)
	fixture.handler = srv.Handler()
	return fixture
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (f *serverFixture) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	f.handler.ServeHTTP(recorder, request)
	return recorder
}

// doRaw sends a request with the Authorization header taken verbatim,
// including a missing or malformed one.
func (f *serverFixture) doRaw(t *testing.T, method, target, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	f.handler.ServeHTTP(recorder, request)
	return recorder
}

func (f *serverFixture) doWithOrigin(t *testing.T, method, target, origin string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, nil)
	request.Header.Set("Origin", origin)
	recorder := httptest.NewRecorder()
	f.handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error.Code
}

func testSavedWord(id, ownerID string) *vocabulary.SavedWord {
	return &vocabulary.SavedWord{
		ID:           id,
		OwnerID:      ownerID,
		Lemma:        "serene",
		Original:     "serene",
		Language:     vocabulary.LanguageEN,
		PartOfSpeech: vocabulary.PartOfSpeechAdjective,
		Translation:  "고요한",
		Example:      "a serene walk",
		Status:       vocabulary.StatusLearning,
		SavedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
