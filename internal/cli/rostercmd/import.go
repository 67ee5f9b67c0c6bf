package rostercmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/cli"
	"github.com/thenoetrevino/rosterpick/internal/cli/styles"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/database"
	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/roster"
)

type importResult struct {
	Path  string `json:"path"`
	Items int    `json:"items"`
}

func (r importResult) String() string {
	return fmt.Sprintf("Imported %d items into %s", r.Items, r.Path)
}

// ImportCmd returns the roster import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <roster.yaml>",
		Short: "Import a YAML roster into the roster database",
		Long: `Replace the roster stored in the SQLite database with the items of a YAML file.

Examples:
  rosterpick roster import sf6.yaml
  rosterpick roster import sf6.yaml --db ./roster.db`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String(cli.FlagDB, "", "Target SQLite database (defaults to ~/.rosterpick/roster.db)")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	items, err := roster.NewYAMLSource(args[0]).Load(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(cli.ExitNotFound, "ROSTER_NOT_FOUND", err, "Check the roster file path")
		}
		return formatter.Fail(cli.ExitDataErr, "ROSTER_PARSE_ERROR", err, "Roster files look like: items: [{id: 1, name: Ryu}]")
	}

	if err := roster.Validate(items); err != nil {
		code := cli.ExitError
		if errors.Is(err, models.ErrDuplicateItemID) || errors.Is(err, models.ErrEmptyItemName) {
			code = cli.ExitValidation
		}
		return formatter.Fail(code, "ROSTER_INVALID", err, "Item IDs must be unique and names non-empty")
	}

	dbPath, _ := cmd.Flags().GetString(cli.FlagDB)
	if dbPath == "" {
		dbPath, err = database.DefaultPath()
		if err != nil {
			return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err, "")
		}
	}

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err, "")
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing roster database", "error", err)
		}
	}()

	if err := roster.Import(ctx, db, items); err != nil {
		return formatter.Fail(cli.ExitError, "IMPORT_ERROR", err, "")
	}

	stored, err := database.NewRosterRepo(db).Count(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "DATABASE_ERROR", err, "")
	}
	result := importResult{Path: dbPath, Items: stored}

	if formatter.JSON {
		return formatter.Success(result)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess(result.String()))
	return err
}
