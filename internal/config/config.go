package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tweetlex/tweetlex/internal/inference"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	XAPI       XAPIConfig       `mapstructure:"x_api"`
	Notion     NotionConfig     `mapstructure:"notion"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
}

type DictionaryConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type XAPIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	BearerToken    string `mapstructure:"bearer_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type NotionConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Version        string `mapstructure:"version"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type PipelineConfig struct {
	// EnrichmentConcurrency bounds the per-analysis enrichment fan-out.
	EnrichmentConcurrency int `mapstructure:"enrichment_concurrency"`
	// ExtractionFallback enables the deterministic heuristic extractor when
	// the generative provider is unreachable. Off by default: degraded
	// extraction affects translation and definition quality downstream.
	ExtractionFallback bool `mapstructure:"extraction_fallback"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tweetlex")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "tweetlex")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_seconds", 30)
	v.SetDefault("gemini.retry_attempts", inference.DefaultMaxRetryAttempts)
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev")
	v.SetDefault("dictionary.timeout_seconds", 10)
	v.SetDefault("x_api.base_url", "https://api.twitter.com")
	v.SetDefault("x_api.timeout_seconds", 10)
	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.version", "2022-06-28")
	v.SetDefault("notion.timeout_seconds", 15)
	v.SetDefault("pipeline.enrichment_concurrency", 5)
	v.SetDefault("pipeline.extraction_fallback", false)

	// Secrets are bound to environment variables only (not from config file)
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("x_api.bearer_token", "X_API_BEARER_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind X_API_BEARER_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind JWT_SECRET environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if cfg.Pipeline.EnrichmentConcurrency < 1 {
		return nil, fmt.Errorf("pipeline.enrichment_concurrency must be at least 1, got %d", cfg.Pipeline.EnrichmentConcurrency)
	}

	return &cfg, nil
}
