// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"units"
	"units/internal/store"
)

func factorCmd(a *app) *cobra.Command {
	var cache bool

	cmd := &cobra.Command{
		Use:   "factor FROM TO",
		Short: "Show the factor that converts a value in FROM to TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactor(cmd.OutOrStdout(), a, args[0], args[1], cache)
		},
	}

	cmd.Flags().BoolVar(&cache, "cache", false, "read and write the factor database")
	return cmd
}

// computeFactor returns the store record for converting from one table entry
// to another.
func computeFactor(from, to units.Entry) (store.Factor, error) {
	f, err := units.ConversionFactor(from.Unit, to.Unit)
	if err != nil {
		return store.Factor{}, err
	}

	factor := store.Factor{
		From:      from.Symbol,
		To:        to.Symbol,
		Factor:    f,
		Dimension: units.Dimension(from.Unit).String(),
	}
	if r, ok, _ := units.ExactConversionFactor(from.Unit, to.Unit); ok {
		factor.Exact = r.String()
	}
	return factor, nil
}

func runFactor(w io.Writer, a *app, fromSymbol, toSymbol string, cache bool) error {
	from, err := a.catalog.lookup(fromSymbol)
	if err != nil {
		return err
	}
	to, err := a.catalog.lookup(toSymbol)
	if err != nil {
		return err
	}

	var db *store.Store
	if cache {
		path, err := a.cfg.DatabasePath()
		if err != nil {
			return err
		}
		if db, err = store.Open(path); err != nil {
			return err
		}
		defer db.Close()

		cached, err := db.Lookup(fromSymbol, toSymbol)
		if err != nil {
			return fmt.Errorf("reading factor cache: %w", err)
		}
		if cached != nil {
			slog.Debug("cached factor", "from", fromSymbol, "to", toSymbol, "since", cached.CreatedAt)
			printFactor(w, a, *cached)
			return nil
		}
	}

	factor, err := computeFactor(from, to)
	if err != nil {
		return fmt.Errorf("%s to %s: %w", fromSymbol, toSymbol, err)
	}

	if db != nil {
		if err := db.Save(factor); err != nil {
			return err
		}
	}

	printFactor(w, a, factor)
	return nil
}

func printFactor(w io.Writer, a *app, f store.Factor) {
	suffix := ""
	if a.cfg.Rational && f.Exact != "" {
		suffix = "(" + f.Exact + ")"
	}
	printColumn(w, []string{formatNumber(f.Factor, a.cfg.Precision)}, []string{suffix})
}
