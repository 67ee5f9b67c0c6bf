package rostercmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
)

// ListCmd returns the roster list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roster items",
		Long:  "List every item of the configured roster in display order.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd)
	if err != nil {
		return formatter.Fail(cli.ExitCode(err), "INITIALIZATION_ERROR", err, "")
	}

	items := cliInstance.App.Roster()

	if formatter.JSON {
		return formatter.Success(items)
	}

	out := cmd.OutOrStdout()
	if formatter.Quiet {
		for _, item := range items {
			if _, err := fmt.Fprintln(out, item.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "Roster is empty")
		return err
	}

	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"ID", "NAME"})
	for _, item := range items {
		tw.Append([]string{strconv.Itoa(item.ID), item.Name})
	}
	tw.Render()

	_, err = fmt.Fprintf(out, "%d items\n", len(items))
	return err
}
