package cli

import (
	"fmt"
	"log/slog"

	"github.com/roach88/covreport/internal/config"
	"github.com/roach88/covreport/internal/coverage"
	"github.com/roach88/covreport/internal/decode"
	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/manifest"
	"github.com/roach88/covreport/internal/report"
	"github.com/roach88/covreport/internal/source"
	"github.com/roach88/covreport/internal/strtab"
)

// LoadInputs loads and validates every input of a report. It either
// returns a complete Input or the first error; no partial results.
//
// Order matters only where data flows: objects before actions, and
// reachability before sessions.
func LoadInputs(cfg config.Config, sessions []string, log *slog.Logger) (report.Input, error) {
	var in report.Input

	labels, err := loadObjectLabels(cfg)
	if err != nil {
		return in, err
	}

	rawLevels, err := strtab.Load("raw level names", cfg.Resource(cfg.LevelNames))
	if err != nil {
		return in, err
	}
	in.LevelNames = strtab.LevelNames(rawLevels)

	objectsPath := cfg.Resource(cfg.Objects)
	blob, err := source.ReadFile(objectsPath)
	if err != nil {
		return in, fmt.Errorf("reading objects: %w", err)
	}
	in.Objects, err = decode.DecodeObjects(blob, labels)
	if err != nil {
		return in, ir.WithPath(err, objectsPath)
	}
	log.Debug("objects decoded", "path", objectsPath, "count", len(in.Objects))

	actionsPath := cfg.Resource(cfg.Actions)
	blob, err = source.ReadFile(actionsPath)
	if err != nil {
		return in, fmt.Errorf("reading actions: %w", err)
	}
	actions, notices, err := decode.DecodeActions(blob, in.Objects)
	if err != nil {
		return in, ir.WithPath(err, actionsPath)
	}
	in.Actions = actions
	logNotices(log, actionsPath, notices)
	log.Debug("actions decoded", "path", actionsPath, "count", len(in.Actions))

	loader := manifest.NewLoader()

	reachablePath := cfg.ReachablePath()
	docs, err := loader.LoadFile(reachablePath)
	if err != nil {
		return in, fmt.Errorf("reading reachability manifest: %w", err)
	}
	in.Reachable = coverage.NewReachability(docs)
	log.Debug("reachability loaded", "path", reachablePath, "levels", len(in.Reachable.Levels()))

	in.Covered = coverage.NewCoverage(in.Reachable)
	for _, path := range sessions {
		docs, err := loader.LoadFile(path)
		if err != nil {
			return in, fmt.Errorf("reading session: %w", err)
		}
		if err := in.Covered.AddAll(docs); err != nil {
			return in, ir.WithPath(err, path)
		}
		log.Debug("session folded", "path", path, "documents", len(docs))
	}

	return in, nil
}

func loadObjectLabels(cfg config.Config) (decode.ObjectLabels, error) {
	var labels decode.ObjectLabels

	names, err := strtab.Load("object names", cfg.Resource(cfg.ObjectNames))
	if err != nil {
		return labels, err
	}
	shortNames, err := strtab.Load("object short names", cfg.Resource(cfg.ObjectShortNames))
	if err != nil {
		return labels, err
	}
	notes, err := strtab.Load("object notes", cfg.Resource(cfg.ObjectNotes))
	if err != nil {
		return labels, err
	}

	labels.Names = names
	labels.ShortNames = shortNames
	labels.Notes = notes
	return labels, nil
}

// logNotices reports non-fatal decode findings. Unknown kinds are common
// in shipped data (unused slots), unknown alter codes are not.
func logNotices(log *slog.Logger, path string, notices []*ir.Error) {
	for _, n := range notices {
		switch n.Code {
		case ir.ErrCodeUnknownAlterType:
			log.Warn("unknown alter type", "path", path, "action", n.Index, "detail", n.Message)
		default:
			log.Debug("unknown action kind", "path", path, "action", n.Index, "detail", n.Message)
		}
	}
}
