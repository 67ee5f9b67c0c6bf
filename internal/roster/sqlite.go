package roster

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/thenoetrevino/rosterpick/internal/database"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// SQLiteSource reads the roster stored in the roster_items table.
type SQLiteSource struct {
	repo *database.RosterRepo
}

// NewSQLiteSource creates a source over an open roster database.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{repo: database.NewRosterRepo(db)}
}

// Name returns the source description
func (s *SQLiteSource) Name() string {
	return "sqlite"
}

// Load lists the stored items in position order.
func (s *SQLiteSource) Load(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListItems(ctx)
}

// Import validates items and replaces the roster stored in db.
func Import(ctx context.Context, db *sql.DB, items []models.Item) error {
	if err := Validate(items); err != nil {
		return err
	}
	return database.NewRosterRepo(db).ReplaceItems(ctx, items)
}

// existingDBPath resolves an empty path to the default database and checks
// that the file exists.
func existingDBPath(path string) (string, error) {
	if path == "" {
		p, err := database.DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if path == database.MemoryPath {
		return path, nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("roster database %s: %w", path, err)
	}
	return path, nil
}
