package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/config"
	"github.com/tweetlex/tweetlex/internal/database"
	"github.com/tweetlex/tweetlex/internal/dictionary/freedict"
	"github.com/tweetlex/tweetlex/internal/inference/gemini"
	"github.com/tweetlex/tweetlex/internal/notion"
	"github.com/tweetlex/tweetlex/internal/server"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/tweets/xapi"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TWEETLEX_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	geminiClient := gemini.NewClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		cfg.Gemini.RetryAttempts,
	)
	defer func() {
		_ = geminiClient.Close()
	}()
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
	wordRepo := vocabulary.NewDBRepository(db)
	settingsRepo := settings.NewDBRepository(db)

	service := analysis.NewService(
		analysis.NewExtractionService(geminiClient, cfg.Pipeline.ExtractionFallback),
		analysis.NewEnricher(geminiClient, dictionaryReader, cfg.Pipeline.EnrichmentConcurrency),
		fetcher,
		analysis.NewDBRepository(db),
		settingsRepo,
		notionRepo,
		syncer,
	)

	srv := server.New(cfg.Auth.JWTSecret, cfg.Server.AllowedOrigins, service, wordRepo, settingsRepo, syncer)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", addr, "model", geminiClient.GetModel())
	return http.ListenAndServe(addr, srv.Handler())
}
