// Package cmd wires rosterpick's cobra command tree.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/cli/configcmd"
	"github.com/thenoetrevino/rosterpick/internal/cli/random"
	"github.com/thenoetrevino/rosterpick/internal/cli/rostercmd"
	"github.com/thenoetrevino/rosterpick/internal/launcher"
	"github.com/thenoetrevino/rosterpick/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the rosterpick command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rosterpick",
		Short: "rosterpick - a searchable roster picker for the terminal",
		Long: `rosterpick is a searchable dropdown picker over a fixed roster.

Run without arguments to open the interactive picker. Type to filter,
press enter to select, and ctrl+r for a random pick.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), cfg)
		},
	}

	cli.AddRosterFlags(rootCmd)

	rootCmd.AddCommand(rostercmd.RosterCmd())
	rootCmd.AddCommand(random.RandomCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	return rootCmd
}

// Execute runs the root command with logging and signal handling set up
func Execute() error {
	// Initialize logging to file before anything else
	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		return err
	}
	return nil
}
