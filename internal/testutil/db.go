// Package testutil holds shared helpers for rosterpick tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/rosterpick/internal/database"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// SampleRoster is a small roster used across tests
var SampleRoster = []models.Item{
	{ID: 1, Name: "Ryu"},
	{ID: 2, Name: "Luke"},
	{ID: 4, Name: "Chun-Li"},
	{ID: 8, Name: "Ken"},
}

// TempDBPath returns a database path inside a per-test temp directory
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "roster.db")
}

// SetupTestDB opens a migrated database at path and closes it on cleanup.
// Pass database.MemoryPath for a private in-memory database.
func SetupTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})
	return db
}

// SeedRoster stores items in the database at path
func SeedRoster(t *testing.T, path string, items []models.Item) {
	t.Helper()
	db, err := database.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := database.NewRosterRepo(db).ReplaceItems(context.Background(), items); err != nil {
		t.Fatalf("Failed to seed roster: %v", err)
	}
}

// ReadRoster returns the items stored in the database at path
func ReadRoster(t *testing.T, path string) []models.Item {
	t.Helper()
	db := SetupTestDB(t, path)
	items, err := database.NewRosterRepo(db).ListItems(context.Background())
	if err != nil {
		t.Fatalf("Failed to list roster: %v", err)
	}
	return items
}
