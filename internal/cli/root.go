package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds the collaborators of a run. Zero values select the
// process environment and UUIDv7 run ids.
type RootOptions struct {
	// Getenv reads configuration variables (defaults to os.Getenv).
	Getenv func(string) string

	// RunIDs allows overriding the run id generator (for testing).
	RunIDs RunIDGenerator
}

// NewRootCommand creates the covreport command.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts == nil {
		opts = &RootOptions{}
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.RunIDs == nil {
		opts.RunIDs = UUIDv7Generator{}
	}

	cmd := &cobra.Command{
		Use:   "covreport [session...]",
		Short: "covreport - scenario data coverage report",
		Long: `Render an HTML coverage report for the compiled scenario data.

Object templates and object actions are decoded from the scenario's
binary resources and classified per level as covered (seen in a play
session), uncovered (statically reachable but never seen) or unreachable.

Each argument is a session coverage capture: the JSON documents the game
prints at the end of every level when built with DATA_COVERAGE. Captures
ending in .zst are decompressed.

Resource locations come from covreport.yaml (or $COVREPORT_CONFIG).
The report is written to stdout.

Example:
  covreport sessions/*.json > coverage.html`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, args, cmd)
		},
	}

	return cmd
}
