// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"units/internal/config"
)

// app holds the settings shared by every subcommand, resolved from the
// config file and then overridden by any flags given.
type app struct {
	cfg     *config.Config
	catalog *catalog

	configPath string
	precision  int
	rational   bool
	database   string
	logLevel   string
}

// helpText dedents a raw string literal used as cobra help: the common
// leading indentation (spaces or tabs) is removed, along with the blank lines
// and trailing spaces that the literal's layout adds.
func helpText(text string) string {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")

	indent := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first || len(lead) < len(indent) {
			indent, first = lead, false
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(line, indent), " \t")
	}
	return strings.Join(lines, "\n")
}

func newRootCmd() *cobra.Command {
	a := &app{catalog: defaultCatalog}

	cmd := &cobra.Command{
		Use:   "units",
		Short: "Inspect units and convert values between them",
		Long: helpText(`
            Inspect the built-in unit tables and convert values between units.

            Units are named by their table symbol, e.g. m, km, in, ft, lb or N.
            'units list' shows every symbol.

            Temperatures:
              absolute scales absK, degC (°C), degF (°F), degR (°R) convert with offsets
              differences dC and dF (and K) convert by their factor only
        `),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/units/config.yaml)")
	flags.IntVarP(&a.precision, "precision", "p", config.DefaultPrecision, "digits shown after the decimal point")
	flags.BoolVarP(&a.rational, "rational", "r", false, "show exact factors as numerator/denominator")
	flags.StringVar(&a.database, "db", "", "conversion factor database (default ~/data/unit-factors.sqlite3)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(listCmd(a))
	cmd.AddCommand(factorCmd(a))
	cmd.AddCommand(convertCmd(a))
	cmd.AddCommand(exportCmd(a))
	return cmd
}

// setup loads the config file, applies flag overrides and installs the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else if path, pathErr := config.DefaultPath(); pathErr == nil {
		a.cfg, err = config.LoadOptional(path)
	} else {
		a.cfg = config.Default()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		a.cfg.Precision = a.precision
	}
	if flags.Changed("rational") {
		a.cfg.Rational = a.rational
	}
	if flags.Changed("db") {
		a.cfg.Database = a.database
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	opts := &slog.HandlerOptions{Level: a.cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if a.cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}
