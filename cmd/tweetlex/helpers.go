package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/config"
	"github.com/tweetlex/tweetlex/internal/database"
	"github.com/tweetlex/tweetlex/internal/dictionary/freedict"
	"github.com/tweetlex/tweetlex/internal/inference/gemini"
	"github.com/tweetlex/tweetlex/internal/notion"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/tweets/xapi"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	return db, nil
}

// newAnalysisService builds the pipeline. The returned Gemini client must be
// closed by the caller.
func newAnalysisService(cfg *config.Config, db *sqlx.DB) (*analysis.Service, *gemini.Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	geminiClient := gemini.NewClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		cfg.Gemini.RetryAttempts,
	)
	dictionaryReader := freedict.NewReader(
		cfg.Dictionary.BaseURL,
		time.Duration(cfg.Dictionary.TimeoutSeconds)*time.Second,
	)
	fetcher := xapi.NewClient(
		cfg.XAPI.BaseURL,
		cfg.XAPI.BearerToken,
		time.Duration(cfg.XAPI.TimeoutSeconds)*time.Second,
	)

	notionRepo := notion.NewDBRepository(db)
	syncer := notion.NewClient(
		cfg.Notion.BaseURL,
		cfg.Notion.Version,
		time.Duration(cfg.Notion.TimeoutSeconds)*time.Second,
		notionRepo,
	)

	service := analysis.NewService(
		analysis.NewExtractionService(geminiClient, cfg.Pipeline.ExtractionFallback),
		analysis.NewEnricher(geminiClient, dictionaryReader, cfg.Pipeline.EnrichmentConcurrency),
		fetcher,
		analysis.NewDBRepository(db),
		settings.NewDBRepository(db),
		notionRepo,
		syncer,
	)
	return service, geminiClient, nil
}
