package cli

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// SetupCLITest creates an App over items with a seeded random source.
// HOME and XDG_CONFIG_HOME point at a temp directory so no user files are read.
func SetupCLITest(t *testing.T, items []models.Item) *app.App {
	t.Helper()
	IsolateHome(t)

	appInstance, err := app.New(context.Background(), config.Default(),
		app.WithRoster(items),
		app.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	return appInstance
}

// IsolateHome points HOME and XDG_CONFIG_HOME at a fresh temp directory
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.ThemeFileEnv, "")
	return home
}
