package configcmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/config"
	clitest "github.com/thenoetrevino/rosterpick/internal/testutil/cli"
)

func TestConfigPath(t *testing.T) {
	home := clitest.IsolateHome(t)

	out, _, err := clitest.ExecuteCommand(t, context.Background(), PathCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "rosterpick", "config.yaml"), strings.TrimSpace(out))
}

func TestConfigInit_WritesLoadableDefaults(t *testing.T) {
	home := clitest.IsolateHome(t)
	path := filepath.Join(home, "rosterpick", "config.yaml")

	out, _, err := clitest.ExecuteCommand(t, context.Background(), InitCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Picker, cfg.Picker)
	assert.Equal(t, config.Default().KeyMappings, cfg.KeyMappings)
}

func TestConfigInit_RefusesOverwriteWithoutForce(t *testing.T) {
	home := clitest.IsolateHome(t)
	path := filepath.Join(home, "rosterpick", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("picker:\n  history_cap: 5\n"), 0o644))

	_, stderr, err := clitest.ExecuteCommand(t, context.Background(), InitCmd(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigExists)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "history_cap: 5")

	_, _, err = clitest.ExecuteCommand(t, context.Background(), InitCmd(), []string{"--force"})
	require.NoError(t, err)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPickerConfig().HistoryCap, cfg.Picker.HistoryCap)
}
