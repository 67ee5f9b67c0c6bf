// Package app is the application container shared by the TUI and the CLI.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/database"
	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/picker"
	"github.com/thenoetrevino/rosterpick/internal/roster"
)

// App holds the loaded configuration and roster.
// This is the main application container handed to the TUI and CLI commands.
type App struct {
	Config *config.Config

	roster []models.Item
	rng    *rand.Rand
}

// New creates a new App, loading the roster named by cfg.Roster.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := appConfig{
		opener: database.Open,
	}
	for _, opt := range opts {
		opt(&ac)
	}

	items := ac.items
	if items == nil {
		loaded, err := roster.FromConfig(ctx, cfg.Roster, ac.opener)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
		items = loaded
	} else if err := roster.Validate(items); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	return &App{
		Config: cfg,
		roster: slices.Clone(items),
		rng:    ac.rng,
	}, nil
}

// Roster returns a copy of the loaded roster.
func (a *App) Roster() []models.Item {
	return slices.Clone(a.roster)
}

// Item returns the roster item with the given id.
func (a *App) Item(id int) (models.Item, error) {
	for _, item := range a.roster {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, fmt.Errorf("roster item %d: %w", id, models.ErrItemNotFound)
}

// NewSelectionState creates picker state over the roster using the configured picker settings.
func (a *App) NewSelectionState() *picker.SelectionState {
	p := a.Config.Picker
	opts := []picker.Option{
		picker.WithHistoryCap(p.HistoryCap),
		picker.WithBlurDelay(p.BlurDelay()),
		picker.WithCancelCloseOnRefocus(p.CancelCloseOnRefocus),
	}
	if a.rng != nil {
		opts = append(opts, picker.WithRand(a.rng))
	}
	return picker.NewSelectionState(a.roster, opts...)
}
