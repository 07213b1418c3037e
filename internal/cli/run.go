package cli

import (
	"bufio"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/covreport/internal/config"
	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/report"
)

func runReport(opts *RootOptions, sessions []string, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.Getenv)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	// Load already validated the level
	logLevel, _ := cfg.SlogLevel()
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	log := slog.New(handler).With("run_id", opts.RunIDs.Generate())

	log.Info("covreport starting",
		"version", ir.Version,
		"scenario_dir", cfg.ScenarioDir,
		"sessions", len(sessions))

	in, err := LoadInputs(cfg, sessions, log)
	if err != nil {
		log.Error("load failed", "error", err)
		return WrapExitError(ExitFailure, "failed to load inputs", err)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := report.Render(out, in); err != nil {
		log.Error("render failed", "error", err)
		return WrapExitError(ExitFailure, "failed to render report", err)
	}
	if err := out.Flush(); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}

	log.Info("report written",
		"objects", len(in.Objects),
		"actions", len(in.Actions),
		"levels", len(in.Reachable.Levels()),
		"covered_objects", in.Covered.All().Objects.Len(),
		"covered_actions", in.Covered.All().Actions.Len())
	return nil
}
