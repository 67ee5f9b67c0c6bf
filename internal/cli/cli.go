// Package cli holds the shared plumbing for rosterpick's sub-commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// Flag names shared by the root command and sub-commands
const (
	FlagRoster = "roster"
	FlagDB     = "db"
)

// ErrConflictingSources is returned when both --roster and --db are given
var ErrConflictingSources = errors.New("--roster and --db cannot be used together")

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with config and roster
}

// AddRosterFlags registers --roster and --db as persistent flags on cmd
func AddRosterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagRoster, "", "Load the roster from this YAML file")
	cmd.PersistentFlags().String(FlagDB, "", "Load the roster from this SQLite database")
}

// ApplyRosterFlags overrides cfg.Roster from --roster / --db when present
func ApplyRosterFlags(cmd *cobra.Command, cfg *config.Config) error {
	rosterPath, _ := cmd.Flags().GetString(FlagRoster)
	dbPath, _ := cmd.Flags().GetString(FlagDB)

	switch {
	case rosterPath != "" && dbPath != "":
		return WithExitCode(ExitUsage, ErrConflictingSources)
	case rosterPath != "":
		cfg.Roster = config.RosterConfig{Source: config.SourceYAML, Path: rosterPath}
	case dbPath != "":
		cfg.Roster = config.RosterConfig{Source: config.SourceSQLite, Path: dbPath}
	}
	return nil
}

// LoadConfig loads the user config and applies the roster flags of cmd
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WithExitCode(ExitDataErr, fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := ApplyRosterFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewCLI loads configuration and the roster for cmd
func NewCLI(ctx context.Context, cmd *cobra.Command, opts ...app.Option) (*CLI, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, WithExitCode(loadExitCode(err), err)
	}

	return &CLI{App: application}, nil
}

// loadExitCode maps roster loading failures to exit codes
func loadExitCode(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, models.ErrDuplicateItemID), errors.Is(err, models.ErrEmptyItemName):
		return ExitValidation
	default:
		return ExitError
	}
}

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying application, which GetCLIFromContext
// uses instead of loading configuration from disk
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// GetCLIFromContext returns a CLI for cmd, reusing an App injected with WithApp
func GetCLIFromContext(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}
	return NewCLI(ctx, cmd)
}
