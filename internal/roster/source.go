// Package roster loads the fixed list of items offered by the picker.
package roster

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// Source loads a roster.
type Source interface {
	// Load returns the roster items in display order
	Load(ctx context.Context) ([]models.Item, error)

	// Name describes the source for logs and error messages
	Name() string
}

// DBOpener opens the roster database at path.
type DBOpener func(ctx context.Context, path string) (*sql.DB, error)

// FromConfig loads and validates the roster named by cfg.
// The sqlite source opens its database with opener and closes it after loading.
// A missing database file is an fs.ErrNotExist error; reading never creates one.
func FromConfig(ctx context.Context, cfg config.RosterConfig, opener DBOpener) ([]models.Item, error) {
	var src Source
	switch cfg.Source {
	case config.SourceBuiltin, "":
		src = Builtin()
	case config.SourceYAML:
		if cfg.Path == "" {
			return nil, fmt.Errorf("roster source %q requires a path", cfg.Source)
		}
		src = NewYAMLSource(cfg.Path)
	case config.SourceSQLite:
		path, err := existingDBPath(cfg.Path)
		if err != nil {
			return nil, err
		}
		db, err := opener(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("error closing roster database", "error", err)
			}
		}()
		src = NewSQLiteSource(db)
	default:
		return nil, fmt.Errorf("unknown roster source %q", cfg.Source)
	}

	return Load(ctx, src)
}

// Load loads items from src and validates them.
func Load(ctx context.Context, src Source) ([]models.Item, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s roster: %w", src.Name(), err)
	}
	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("invalid %s roster: %w", src.Name(), err)
	}

	slog.Info("roster loaded", "source", src.Name(), "items", len(items))
	return items, nil
}
