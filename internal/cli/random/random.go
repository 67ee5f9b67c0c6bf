// Package random implements the random sub-command.
package random

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/cli/styles"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// RandomCmd returns the random subcommand
func RandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random roster item",
		Long: `Pick one item uniformly at random from the configured roster.

Examples:
  rosterpick random
  rosterpick random --quiet
  rosterpick random --roster ./sf6.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runRandom,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runRandom(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd)
	if err != nil {
		return formatter.Fail(cli.ExitCode(err), "INITIALIZATION_ERROR", err, "")
	}

	selection := cliInstance.App.NewSelectionState()
	item, ok := selection.SelectRandomItem()
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "EMPTY_ROSTER", models.ErrEmptyRoster,
			"Load a roster with --roster <file.yaml> or 'rosterpick roster import'")
	}

	if jsonOutput || quietMode {
		return formatter.Success(item)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderItemCard("Random pick", item))
	return err
}
