package rostercmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/cli/styles"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

// ShowCmd returns the roster show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one roster item",
		Long:  "Look up a roster item by id in the configured roster.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_ID", fmt.Errorf("invalid item id %q", args[0]), "Item ids are integers, see 'rosterpick roster list'")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context(), cmd)
	if err != nil {
		return formatter.Fail(cli.ExitCode(err), "INITIALIZATION_ERROR", err, "")
	}

	item, err := cliInstance.App.Item(id)
	if err != nil {
		code := cli.ExitError
		if errors.Is(err, models.ErrItemNotFound) {
			code = cli.ExitNotFound
		}
		return formatter.Fail(code, "ITEM_NOT_FOUND", err, "See 'rosterpick roster list' for valid ids")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(item)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderItemCard("Roster item", item))
	return err
}
