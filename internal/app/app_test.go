package app

import (
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/database"
	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/roster"
)

func TestNew_BuiltinRoster(t *testing.T) {
	app, err := New(context.Background(), config.Default())
	require.NoError(t, err)

	assert.NotEmpty(t, app.Roster())
}

func TestNew_WithRoster(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Ryu"}, {ID: 2, Name: "Ken"}}

	app, err := New(context.Background(), config.Default(), WithRoster(items))
	require.NoError(t, err)

	assert.Equal(t, items, app.Roster())
}

func TestApp_Item(t *testing.T) {
	app, err := New(context.Background(), config.Default(),
		WithRoster([]models.Item{{ID: 1, Name: "Ryu"}, {ID: 8, Name: "Ken"}}))
	require.NoError(t, err)

	item, err := app.Item(8)
	require.NoError(t, err)
	assert.Equal(t, "Ken", item.Name)

	_, err = app.Item(2)
	assert.True(t, errors.Is(err, models.ErrItemNotFound))
}

func TestNew_InvalidRoster(t *testing.T) {
	items := []models.Item{{ID: 1, Name: "Ryu"}, {ID: 1, Name: "Ken"}}

	_, err := New(context.Background(), config.Default(), WithRoster(items))
	assert.True(t, errors.Is(err, models.ErrDuplicateItemID))
}

func TestNew_SQLiteRoster(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roster.db")

	db, err := database.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, roster.Import(ctx, db, []models.Item{{ID: 3, Name: "Cammy"}}))
	require.NoError(t, db.Close())

	cfg := config.Default()
	cfg.Roster = config.RosterConfig{Source: config.SourceSQLite, Path: path}

	app, err := New(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{{ID: 3, Name: "Cammy"}}, app.Roster())
}

func TestNew_OpenerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := config.Default()
	cfg.Roster = config.RosterConfig{Source: config.SourceSQLite, Path: path}

	boom := errors.New("boom")
	_, err := New(context.Background(), cfg, WithDBOpener(func(context.Context, string) (*sql.DB, error) {
		return nil, boom
	}))
	assert.True(t, errors.Is(err, boom))
}

func TestNewSelectionState_UsesPickerConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.HistoryCap = 2
	cfg.Picker.BlurDelayMS = 50

	items := []models.Item{{ID: 1, Name: "Ryu"}, {ID: 2, Name: "Ken"}, {ID: 3, Name: "Guile"}}
	app, err := New(context.Background(), cfg, WithRoster(items), WithRand(rand.New(rand.NewPCG(1, 1))))
	require.NoError(t, err)

	state := app.NewSelectionState()
	assert.Equal(t, 2, state.HistoryCap())
	assert.Equal(t, 50*time.Millisecond, state.BlurDelay())
	assert.Equal(t, items, state.Roster())

	for _, item := range items {
		state.SelectItem(item)
	}
	assert.Len(t, state.History(), 2)
}
