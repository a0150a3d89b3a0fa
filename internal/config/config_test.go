package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingUsesDefaults(t *testing.T) {
	t.Setenv("SETUPGEN_CONFIG", filepath.Join(t.TempDir(), "none.json"))
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourcePattern != "*.py" || cfg.MarkerName != "__init__.py" || cfg.MarkerExclude != "__init__*" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval())
	}
}

func TestSaveAndLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	t.Setenv("SETUPGEN_CONFIG", p)
	if err := Save(&Config{SourcePattern: "*.pyx", Symlink: true, PollIntervalMS: 25}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourcePattern != "*.pyx" || !cfg.Symlink || cfg.PollInterval() != 25*time.Millisecond {
		t.Fatalf("round trip lost values: %+v", cfg)
	}
	if cfg.MarkerName != "__init__.py" {
		t.Fatalf("unset fields should take defaults: %+v", cfg)
	}
}

func TestLoad_MalformedIsNonFatal(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SETUPGEN_CONFIG", p)
	cfg, err := Load()
	if err != nil || cfg.SourcePattern != "*.py" {
		t.Fatalf("expected defaults, got %+v, %v", cfg, err)
	}
}

func TestPath_Home(t *testing.T) {
	t.Setenv("SETUPGEN_CONFIG", "")
	t.Setenv("HOME", "/home/someone")
	if got := Path(); got != filepath.Join("/home/someone", ".setupgen.json") {
		t.Fatalf("Path = %q", got)
	}
	var nilCfg *Config
	if nilCfg.PollInterval() != 100*time.Millisecond {
		t.Fatal("nil config should use default interval")
	}
}
