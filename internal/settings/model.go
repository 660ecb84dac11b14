// Package settings provides per-user configuration and the auto-save policy
// engine.
package settings

import (
	"strings"
	"time"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

const (
	// MinAutoSaveWordFloor and MinAutoSaveWordCeil bound the configurable
	// auto-save word threshold.
	MinAutoSaveWordFloor = 1
	MinAutoSaveWordCeil  = 10
)

// UserSettings is one user's configuration row, created lazily with defaults
// on first read.
type UserSettings struct {
	OwnerID               string    `db:"owner_id"`
	AutoSaveEnabled       bool      `db:"auto_save_enabled"`
	AutoSaveLanguages     string    `db:"auto_save_languages"`
	AutoSaveMinWords      int       `db:"auto_save_min_words"`
	TargetLanguage        string    `db:"target_language"`
	DefaultSourceLanguage string    `db:"default_source_language"`
	NotificationsEnabled  bool      `db:"notifications_enabled"`
	Theme                 string    `db:"theme"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// DefaultUserSettings returns the lazily created defaults for a user.
func DefaultUserSettings(ownerID string) UserSettings {
	return UserSettings{
		OwnerID:               ownerID,
		AutoSaveEnabled:       false,
		AutoSaveLanguages:     "EN,JA,ZH",
		AutoSaveMinWords:      3,
		TargetLanguage:        "KO",
		DefaultSourceLanguage: "EN",
		NotificationsEnabled:  true,
		Theme:                 "SYSTEM",
	}
}

// Languages parses the stored language set.
func (s UserSettings) Languages() []vocabulary.Language {
	if s.AutoSaveLanguages == "" {
		return nil
	}
	parts := strings.Split(s.AutoSaveLanguages, ",")
	languages := make([]vocabulary.Language, 0, len(parts))
	for _, part := range parts {
		language, err := vocabulary.ParseLanguage(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		languages = append(languages, language)
	}
	return languages
}

// HasLanguage reports whether language is in the auto-save target set.
func (s UserSettings) HasLanguage(language vocabulary.Language) bool {
	for _, candidate := range s.Languages() {
		if candidate == language {
			return true
		}
	}
	return false
}

// JoinLanguages renders a language set into its stored form.
func JoinLanguages(languages []vocabulary.Language) string {
	parts := make([]string, 0, len(languages))
	for _, language := range languages {
		parts = append(parts, string(language))
	}
	return strings.Join(parts, ",")
}
