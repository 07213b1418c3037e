// Command covreport renders the scenario data coverage report.
package main

import (
	"os"

	"github.com/roach88/covreport/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(nil)
	if err := cmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
