// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for the configuration.
const (
	DefaultPrecision = 4
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultDatabase  = "unit-factors.sqlite3"
)

type Config struct {
	// Precision is the number of digits shown after the decimal point.
	Precision int `yaml:"precision"`

	// Rational shows exact factors as num/den next to the decimal value.
	Rational bool `yaml:"rational"`

	// Database is the path of the SQLite conversion factor store. A leading
	// "~/" is expanded to the home directory.
	Database string `yaml:"database"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultPath returns the path of the configuration file used when none is
// given on the command line.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "units", "config.yaml"), nil
}

// Default returns the configuration used when there is no config file.
func Default() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Database:  filepath.Join("~", "data", DefaultDatabase),
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads and parses the config file at path. Missing fields are filled
// with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the values that flags or the file may have set.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 30 {
		return fmt.Errorf("precision %d is out of range [0, 30]", c.Precision)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q unknown: want text|json", c.LogFormat)
	}
	return nil
}

// DatabasePath returns Database with a leading "~/" expanded.
func (c *Config) DatabasePath() (string, error) {
	path := c.Database
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path, nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log_level %q unknown: want debug|info|warn|error", s)
	}
	return level, nil
}
