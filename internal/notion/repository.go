package notion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing Notion integration rows.
type Repository interface {
	Find(ctx context.Context, ownerID string) (*Integration, error)
	UpdateLastSync(ctx context.Context, ownerID string, syncedAt time.Time) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the user's integration, or nil when Notion is not connected.
func (r *DBRepository) Find(ctx context.Context, ownerID string) (*Integration, error) {
	var integration Integration
	err := r.db.GetContext(ctx, &integration,
		"SELECT * FROM notion_integrations WHERE owner_id = ?", ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(notion_integrations) > %w", err)
	}
	return &integration, nil
}

// UpdateLastSync stamps the most recent successful sync.
func (r *DBRepository) UpdateLastSync(ctx context.Context, ownerID string, syncedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE notion_integrations SET last_sync_at = ? WHERE owner_id = ?",
		syncedAt, ownerID); err != nil {
		return fmt.Errorf("db.ExecContext(update notion_integrations) > %w", err)
	}
	return nil
}
