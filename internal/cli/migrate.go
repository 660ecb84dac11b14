package cli

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/tweetlex/tweetlex/schemas"
)

// RunMigrate applies the embedded schema migrations in file name order.
// Statements are idempotent (CREATE TABLE IF NOT EXISTS), so reapplying is
// safe.
func RunMigrate(ctx context.Context, db *sqlx.DB) error {
	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob > %w", err)
	}
	sort.Strings(entries)

	for _, entry := range entries {
		contents, err := schemas.Migrations.ReadFile(entry)
		if err != nil {
			return fmt.Errorf("schemas.Migrations.ReadFile(%s) > %w", entry, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", entry, err)
		}
		fmt.Printf("Applied %s\n", entry)
	}
	return nil
}
