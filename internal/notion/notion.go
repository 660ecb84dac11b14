// Package notion syncs saved words to a user's Notion database. Sync
// failures are reported but never roll back already-persisted words.
package notion

import (
	"context"
	"time"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

//go:generate mockgen -source=notion.go -destination=../mocks/notion/mock_syncer.go -package=mock_notion

// Integration is one user's Notion connection row.
type Integration struct {
	OwnerID     string     `db:"owner_id"`
	AccessToken string     `db:"access_token"`
	DatabaseID  string     `db:"database_id"`
	IsActive    bool       `db:"is_active"`
	AutoSync    bool       `db:"auto_sync"`
	LastSyncAt  *time.Time `db:"last_sync_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Syncer upserts one word record into the user's configured Notion database.
type Syncer interface {
	UpsertWordRecord(ctx context.Context, ownerID string, word vocabulary.EnrichedWord, sourceURL *string) error
}
