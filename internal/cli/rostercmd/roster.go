// Package rostercmd implements the roster sub-commands.
package rostercmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
)

// RosterCmd returns the roster parent command
func RosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and manage the roster",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}
