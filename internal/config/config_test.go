// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "rational: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Precision != DefaultPrecision {
		t.Errorf("precision: got %d, want %d", cfg.Precision, DefaultPrecision)
	}
	if !cfg.Rational {
		t.Errorf("rational: got false, want true")
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("log level: got %v, want %v", cfg.SlogLevel(), slog.LevelWarn)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("log format: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `precision: 8
database: /tmp/factors.sqlite3
log_level: debug
log_format: json
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Precision != 8 {
		t.Errorf("precision: got %d, want 8", cfg.Precision)
	}
	if path, err := cfg.DatabasePath(); err != nil || path != "/tmp/factors.sqlite3" {
		t.Errorf("database: got %q, %v", path, err)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v, want %v", cfg.SlogLevel(), slog.LevelDebug)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative precision", "precision: -1\n"},
		{"unknown level", "log_level: loud\n"},
		{"unknown format", "log_format: xml\n"},
		{"bad yaml", "precision: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, test.content)); err == nil {
				t.Errorf("Load(%q) succeeded", test.content)
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}

func TestDatabasePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Default().DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath: %v", err)
	}
	if want := filepath.Join(home, "data", DefaultDatabase); path != want {
		t.Errorf("got %q, want %q", path, want)
	}
}
