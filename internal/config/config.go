// Package config provides configuration management for setupgen.
// It loads and saves user defaults for the helper commands: which files
// count as source files, how package markers are named and templated, how
// often the process runner polls, and whether trees are linked or copied.
//
// Configuration is stored in JSON format at ~/.setupgen.json (or the path
// in $SETUPGEN_CONFIG). Missing or unreadable files fall back to defaults,
// so the tool works without any configuration.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	e "setupgen/pkg/errors"
	"setupgen/pkg/fileops"
	"setupgen/pkg/runner"
)

// Config holds user defaults for the helper commands.
type Config struct {
	SourcePattern  string `json:"source_pattern,omitempty"`
	MarkerName     string `json:"marker_name,omitempty"`
	MarkerExclude  string `json:"marker_exclude,omitempty"`
	MarkerTemplate string `json:"marker_template,omitempty"`
	PollIntervalMS int    `json:"poll_interval_ms,omitempty"`
	Symlink        bool   `json:"symlink,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourcePattern:  fileops.DefaultSourcePattern,
		MarkerName:     fileops.DefaultMarkerName,
		MarkerExclude:  fileops.DefaultMarkerExclude,
		PollIntervalMS: int(runner.DefaultPollInterval / time.Millisecond),
	}
}

// PollInterval returns the runner poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	if c == nil || c.PollIntervalMS <= 0 {
		return runner.DefaultPollInterval
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// fillDefaults replaces empty fields with built-in values.
func (c *Config) fillDefaults() {
	d := Default()
	if c.SourcePattern == "" {
		c.SourcePattern = d.SourcePattern
	}
	if c.MarkerName == "" {
		c.MarkerName = d.MarkerName
	}
	if c.MarkerExclude == "" {
		c.MarkerExclude = d.MarkerExclude
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = d.PollIntervalMS
	}
}

// Path returns the absolute path to the setupgen configuration file.
func Path() string {
	if p := os.Getenv("SETUPGEN_CONFIG"); p != "" {
		return p
	}
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".setupgen.json")
		}
	}
	return filepath.Join(home, ".setupgen.json")
}

// Load reads configuration from disk. If missing, returns defaults and nil error.
func Load() (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, e.WrapFS(err, "read config")
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return Default(), nil // treat parse issues as defaults (non-fatal)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return e.Wrap(err, e.ErrInvalidConfig, "encode config")
	}
	if err := os.WriteFile(Path(), b, 0o644); err != nil {
		return e.WrapFS(err, "write config")
	}
	return nil
}
