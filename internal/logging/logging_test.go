package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWith_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "test.log")
	closer, err := InitWith(Options{Path: path, Level: slog.LevelInfo})
	require.NoError(t, err)

	slog.Debug("hidden message")
	slog.Info("roster loaded", "items", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.Contains(out, "msg=\"roster loaded\""), out)
	assert.Contains(t, out, "items=3")
	assert.NotContains(t, out, "hidden message")
	assert.NotNil(t, Logger)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".rosterpick", "logs", "rosterpick.log"), path)
}
