// Package configcmd implements the config sub-commands.
package configcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/config"
)

// ErrConfigExists is returned by init when a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every setting at its default",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := &cli.OutputFormatter{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("%s: %w", path, ErrConfigExists), "Use --force to overwrite it")
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "")
	}

	if err := config.Default().Save(); err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return err
}
