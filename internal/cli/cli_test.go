package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.ThemeFileEnv, "")
	return home
}

func newFlaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddRosterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyRosterFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.RosterConfig
	}{
		{"no flags keeps config", nil, config.RosterConfig{Source: config.SourceBuiltin}},
		{"roster flag", []string{"--roster", "sf6.yaml"}, config.RosterConfig{Source: config.SourceYAML, Path: "sf6.yaml"}},
		{"db flag", []string{"--db", "roster.db"}, config.RosterConfig{Source: config.SourceSQLite, Path: "roster.db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, ApplyRosterFlags(newFlaggedCommand(t, tt.args...), cfg))
			assert.Equal(t, tt.want, cfg.Roster)
		})
	}
}

func TestApplyRosterFlags_Conflict(t *testing.T) {
	cmd := newFlaggedCommand(t, "--roster", "a.yaml", "--db", "b.db")
	err := ApplyRosterFlags(cmd, config.Default())
	assert.ErrorIs(t, err, ErrConflictingSources)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestNewCLI_YAMLRosterFlag(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - id: 3\n    name: Jamie\n"), 0o644))

	c, err := NewCLI(context.Background(), newFlaggedCommand(t, "--roster", path))
	require.NoError(t, err)

	assert.Equal(t, []models.Item{{ID: 3, Name: "Jamie"}}, c.App.Roster())
}

func TestNewCLI_LoadErrorsCarryExitCodes(t *testing.T) {
	home := isolateHome(t)

	_, err := NewCLI(context.Background(), newFlaggedCommand(t, "--roster", filepath.Join(home, "missing.yaml")))
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))

	dup := filepath.Join(home, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("items:\n  - {id: 1, name: Ryu}\n  - {id: 1, name: Ken}\n"), 0o644))
	_, err = NewCLI(context.Background(), newFlaggedCommand(t, "--roster", dup))
	require.Error(t, err)
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.True(t, errors.Is(err, models.ErrDuplicateItemID))
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	isolateHome(t)
	injected, err := app.New(context.Background(), config.Default(),
		app.WithRoster([]models.Item{{ID: 9, Name: "Zangief"}}))
	require.NoError(t, err)

	c, err := GetCLIFromContext(WithApp(context.Background(), injected), newFlaggedCommand(t))
	require.NoError(t, err)
	assert.Same(t, injected, c.App)
}

func TestGetCLIFromContext_FallsBackToConfig(t *testing.T) {
	isolateHome(t)

	c, err := GetCLIFromContext(context.Background(), newFlaggedCommand(t))
	require.NoError(t, err)

	// Built-in roster
	assert.Len(t, c.App.Roster(), 29)
}
