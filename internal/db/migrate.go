package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is re-run on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Log entries keep their source insertion order via rowid; aggregation
	// iterates in that order, not timestamp order.
	`CREATE TABLE IF NOT EXISTS log_entries (
		id         TEXT PRIMARY KEY,
		timestamp  TEXT NOT NULL,
		title_text TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_log_entries_timestamp ON log_entries(timestamp)`,

	`CREATE TABLE IF NOT EXISTS blacklist (
		subject TEXT PRIMARY KEY
	)`,
}
