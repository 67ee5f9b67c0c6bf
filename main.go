package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/rosterpick/cmd"
	"github.com/thenoetrevino/rosterpick/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var reported *cli.ExitCodeError
		if !errors.As(err, &reported) || !reported.Reported {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
