package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/notion"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/tweets"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// AnalyzeRequest is one analysis submission. Exactly one of Text and URL
// must be set.
type AnalyzeRequest struct {
	Text     string
	URL      string
	AutoSave bool
}

// AnalyzeResult is the pipeline outcome for one request.
type AnalyzeResult struct {
	Analysis *Analysis
	// Words are the enriched words computed (or restored) for this request,
	// in extraction order, regardless of whether auto-save persisted them.
	Words []vocabulary.EnrichedWord
	// Cached reports a cache short-circuit: no provider was invoked.
	Cached bool
	// Degraded reports that the heuristic fallback extractor produced the
	// candidates.
	Degraded bool
	// AutoSavedCount is how many words the auto-save policy persisted.
	AutoSavedCount int
	// SyncTriggered reports that an external Notion sync was requested.
	SyncTriggered bool
}

// Service orchestrates the analysis pipeline: resolve, cache check, fetch,
// extract, enrich, decide, persist, sync.
type Service struct {
	extraction   *ExtractionService
	enricher     *Enricher
	fetcher      tweets.Fetcher
	analyses     Repository
	settingsRepo settings.Repository
	notionRepo   notion.Repository
	syncer       notion.Syncer

	now   func() time.Time
	newID func() string
}

// ServiceOption configures optional Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides row id generation, used by tests.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(
	extraction *ExtractionService,
	enricher *Enricher,
	fetcher tweets.Fetcher,
	analyses Repository,
	settingsRepo settings.Repository,
	notionRepo notion.Repository,
	syncer notion.Syncer,
	opts ...ServiceOption,
) *Service {
	service := &Service{
		extraction:   extraction,
		enricher:     enricher,
		fetcher:      fetcher,
		analyses:     analyses,
		settingsRepo: settingsRepo,
		notionRepo:   notionRepo,
		syncer:       syncer,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Analyze runs the whole pipeline for one submission. Stages run strictly
// sequentially; only the enrichment fan-out inside Enrich is concurrent.
func (s *Service) Analyze(ctx context.Context, ownerID string, request AnalyzeRequest) (*AnalyzeResult, error) {
	source, cached, err := s.resolve(ctx, ownerID, request)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cachedResult(cached), nil
	}

	extraction, err := s.extraction.Extract(ctx, source.RawText)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enricher.Enrich(ctx, extraction, source.RawText)
	if err != nil {
		return nil, err
	}

	userSettings, err := s.settingsRepo.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to load settings", fmt.Errorf("settingsRepo.GetOrCreate > %w", err))
	}
	notionState, err := s.notionState(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	decision := settings.Decide(*userSettings, notionState, extraction.Language, enriched, request.AutoSave)

	record := &Analysis{
		ID:         s.newID(),
		OwnerID:    ownerID,
		ContentKey: source.ContentKey,
		SourceURL:  source.SourceURL,
		RawText:    source.RawText,
		AuthorRef:  source.AuthorRef,
		Language:   extraction.Language,
		AnalyzedAt: s.now(),
	}
	// The analysis keeps the whole enriched batch: auto-save gates the
	// user's word collection, never the cache payload.
	record.Words = NewAnalysisWords(record.ID, enriched)
	saved := s.toSavedWords(ownerID, record.ID, decision.WordsToPersist)

	if err := s.analyses.Create(ctx, record, saved); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// A concurrent request created the same (owner, content key)
			// first. Its analysis is the canonical one.
			existing, rereadErr := s.analyses.FindByContentKey(ctx, ownerID, source.ContentKey)
			if rereadErr != nil {
				return nil, apperror.Wrap(apperror.CodeInternal, "failed to reread analysis", rereadErr)
			}
			if existing == nil {
				return nil, apperror.Wrap(apperror.CodeInternal, "analysis vanished after conflict", err)
			}
			return cachedResult(existing), nil
		}
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to persist analysis", err)
	}

	if decision.TriggerExternalSync {
		s.syncWords(ctx, ownerID, saved, source.SourceURL)
	}

	return &AnalyzeResult{
		Analysis:       record,
		Words:          enriched,
		Degraded:       extraction.Degraded,
		AutoSavedCount: len(saved),
		SyncTriggered:  decision.TriggerExternalSync,
	}, nil
}

// resolve normalizes the submission into a content identity, checking the
// cache as soon as the identity is known. The cache only applies to
// URL-derived keys: raw-text submissions always get a fresh key.
func (s *Service) resolve(ctx context.Context, ownerID string, request AnalyzeRequest) (NormalizedSource, *Analysis, error) {
	hasText := strings.TrimSpace(request.Text) != ""
	hasURL := strings.TrimSpace(request.URL) != ""
	if hasText == hasURL {
		return NormalizedSource{}, nil, apperror.New(apperror.CodeInvalidRequest, "exactly one of text and url must be provided")
	}

	if hasText {
		return NormalizedSource{
			ContentKey: tweets.NewTextContentKey(),
			RawText:    strings.TrimSpace(request.Text),
		}, nil, nil
	}

	tweetID := tweets.ExtractTweetID(request.URL)
	if tweetID == "" {
		return NormalizedSource{}, nil, apperror.New(apperror.CodeInvalidURL, "Invalid tweet URL")
	}

	cached, err := s.analyses.FindByContentKey(ctx, ownerID, tweetID)
	if err != nil {
		return NormalizedSource{}, nil, apperror.Wrap(apperror.CodeInternal, "failed to check analysis cache", err)
	}
	if cached != nil {
		return NormalizedSource{}, cached, nil
	}

	tweet, err := s.fetcher.Fetch(ctx, tweetID)
	if err != nil {
		return NormalizedSource{}, nil, err
	}

	rawText := strings.TrimSpace(tweet.Text)
	if rawText == "" {
		return NormalizedSource{}, nil, apperror.New(apperror.CodeInvalidRequest, "tweet has no analyzable text")
	}

	sourceURL := request.URL
	source := NormalizedSource{
		ContentKey: tweetID,
		RawText:    rawText,
		SourceURL:  &sourceURL,
	}
	if tweet.AuthorID != "" {
		authorRef := tweet.AuthorID
		source.AuthorRef = &authorRef
	}
	return source, nil, nil
}

func (s *Service) notionState(ctx context.Context, ownerID string) (settings.NotionState, error) {
	integration, err := s.notionRepo.Find(ctx, ownerID)
	if err != nil {
		return settings.NotionState{}, apperror.Wrap(apperror.CodeInternal, "failed to load notion integration", fmt.Errorf("notionRepo.Find > %w", err))
	}
	if integration == nil {
		return settings.NotionState{}, nil
	}
	return settings.NotionState{
		Active:   integration.IsActive && integration.DatabaseID != "",
		AutoSync: integration.AutoSync,
	}, nil
}

func (s *Service) toSavedWords(ownerID, analysisID string, words []vocabulary.EnrichedWord) []vocabulary.SavedWord {
	saved := make([]vocabulary.SavedWord, 0, len(words))
	for _, word := range words {
		saved = append(saved, vocabulary.SavedWord{
			ID:             s.newID(),
			OwnerID:        ownerID,
			AnalysisID:     &analysisID,
			Lemma:          word.Lemma,
			Original:       word.Original,
			Language:       word.Language,
			PartOfSpeech:   word.PartOfSpeech,
			Translation:    word.Translation,
			Definition:     word.Definition,
			IPANotation:    word.Pronunciation.IPA,
			HangulNotation: word.Pronunciation.Hangul,
			Example:        word.Example,
			Status:         vocabulary.StatusLearning,
			SavedAt:        s.now(),
		})
	}
	return saved
}

// syncWords pushes auto-saved words to Notion. Sync failures are logged and
// never roll back the already-persisted words.
func (s *Service) syncWords(ctx context.Context, ownerID string, words []vocabulary.SavedWord, sourceURL *string) {
	for _, word := range words {
		if err := s.syncer.UpsertWordRecord(ctx, ownerID, word.Enriched(), sourceURL); err != nil {
			slog.Default().Error("notion sync failed",
				"owner", ownerID,
				"word", word.Lemma,
				"error", err)
		}
	}
}

func cachedResult(record *Analysis) *AnalyzeResult {
	words := make([]vocabulary.EnrichedWord, 0, len(record.Words))
	for _, word := range record.Words {
		words = append(words, word.Enriched())
	}
	return &AnalyzeResult{
		Analysis: record,
		Words:    words,
		Cached:   true,
	}
}
