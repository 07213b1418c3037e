// Package config locates the scenario resources a report is built from.
//
// Configuration is an optional YAML file. Unset keys keep their defaults,
// which point at the game's installed factory scenario on macOS and at
// cov/reachable.json in the working directory.
//
//	scenario_dir: /path/to/Scenarios/com.biggerplanet.ares
//	objects: objects/500.bsob
//	actions: object-actions/500.obac
//	object_names: strings/5000.json
//	object_short_names: strings/5001.json
//	object_notes: strings/5002.json
//	level_names: strings/4600.json
//	reachable: cov/reachable.json
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig      = "COVREPORT_CONFIG"
	EnvScenarioDir = "COVREPORT_SCENARIO_DIR"
	EnvLogLevel    = "COVREPORT_LOG_LEVEL"
)

// DefaultFile is read from the working directory when EnvConfig is unset.
const DefaultFile = "covreport.yaml"

// Config holds resource locations. Resource paths are relative to
// ScenarioDir unless absolute; Reachable is relative to the working
// directory.
type Config struct {
	ScenarioDir      string `yaml:"scenario_dir"`
	Objects          string `yaml:"objects"`
	Actions          string `yaml:"actions"`
	ObjectNames      string `yaml:"object_names"`
	ObjectShortNames string `yaml:"object_short_names"`
	ObjectNotes      string `yaml:"object_notes"`
	LevelNames       string `yaml:"level_names"`
	Reachable        string `yaml:"reachable"`
	LogLevel         string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScenarioDir:      "~/Library/Application Support/Antares/Scenarios/com.biggerplanet.ares/",
		Objects:          "objects/500.bsob",
		Actions:          "object-actions/500.obac",
		ObjectNames:      "strings/5000.json",
		ObjectShortNames: "strings/5001.json",
		ObjectNotes:      "strings/5002.json",
		LevelNames:       "strings/4600.json",
		Reachable:        "cov/reachable.json",
		LogLevel:         "info",
	}
}

// Load resolves the configuration: defaults, then the file named by
// EnvConfig (or DefaultFile if it exists), then environment overrides.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	path := getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.merge(data); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if dir := getenv(EnvScenarioDir); dir != "" {
		cfg.ScenarioDir = dir
	}
	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// merge overlays the keys present in a YAML document. Unknown keys are
// rejected to catch typos.
func (c *Config) merge(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Resource resolves a scenario-relative path.
func (c Config) Resource(rel string) string {
	rel = expandHome(rel)
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(expandHome(c.ScenarioDir), rel)
}

// ReachablePath resolves the reachability manifest path.
func (c Config) ReachablePath() string {
	return expandHome(c.Reachable)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
