package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing user settings.
type Repository interface {
	GetOrCreate(ctx context.Context, ownerID string) (*UserSettings, error)
	Save(ctx context.Context, settings *UserSettings) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// GetOrCreate returns the user's settings, creating the default row on first
// read.
func (r *DBRepository) GetOrCreate(ctx context.Context, ownerID string) (*UserSettings, error) {
	var settings UserSettings
	err := r.db.GetContext(ctx, &settings,
		"SELECT * FROM user_settings WHERE owner_id = ?", ownerID)
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db.GetContext(user_settings) > %w", err)
	}

	defaults := DefaultUserSettings(ownerID)
	// INSERT IGNORE keeps a concurrent first read from failing on the
	// primary key; whichever insert wins, the reread below is authoritative.
	if _, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO user_settings
			(owner_id, auto_save_enabled, auto_save_languages, auto_save_min_words,
			target_language, default_source_language, notifications_enabled, theme)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		defaults.OwnerID, defaults.AutoSaveEnabled, defaults.AutoSaveLanguages,
		defaults.AutoSaveMinWords, defaults.TargetLanguage, defaults.DefaultSourceLanguage,
		defaults.NotificationsEnabled, defaults.Theme); err != nil {
		return nil, fmt.Errorf("db.ExecContext(insert user_settings) > %w", err)
	}

	if err := r.db.GetContext(ctx, &settings,
		"SELECT * FROM user_settings WHERE owner_id = ?", ownerID); err != nil {
		return nil, fmt.Errorf("db.GetContext(user_settings after insert) > %w", err)
	}
	return &settings, nil
}

// Save writes back a modified settings row.
func (r *DBRepository) Save(ctx context.Context, settings *UserSettings) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE user_settings SET auto_save_enabled = ?, auto_save_languages = ?,
			auto_save_min_words = ?, target_language = ?, default_source_language = ?,
			notifications_enabled = ?, theme = ?
		WHERE owner_id = ?`,
		settings.AutoSaveEnabled, settings.AutoSaveLanguages, settings.AutoSaveMinWords,
		settings.TargetLanguage, settings.DefaultSourceLanguage,
		settings.NotificationsEnabled, settings.Theme, settings.OwnerID); err != nil {
		return fmt.Errorf("db.ExecContext(update user_settings) > %w", err)
	}
	return nil
}
