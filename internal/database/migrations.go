package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the roster schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create roster items table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS roster_items (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create index for ordered reads
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_roster_items_position
		ON roster_items(position)
	`)
	return err
}
