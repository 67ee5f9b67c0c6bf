package rostercmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/roster"
)

// ExportCmd returns the roster export subcommand
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the roster as YAML",
		Long:  "Print the configured roster in the format accepted by 'roster import' and --roster.",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context(), cmd)
	if err != nil {
		return formatter.Fail(cli.ExitCode(err), "INITIALIZATION_ERROR", err, "")
	}

	data, err := roster.MarshalYAML(cliInstance.App.Roster())
	if err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err, "")
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
