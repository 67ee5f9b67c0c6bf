package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rosterpick/internal/app"
	clipkg "github.com/thenoetrevino/rosterpick/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// Stdout and stderr are captured separately.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCommand(t, clipkg.WithApp(context.Background(), testApp), cmd, args)
}

// ExecuteCommand runs cmd with ctx and args, capturing its output
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
