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
	"units/internal/enumerable"
	"units/internal/store"
)

func exportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the factors between every pair of convertible units to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.OutOrStdout(), a)
		},
	}
}

// exportFactors returns the factors between every ordered pair of distinct
// linear entries that share a dimension.
func exportFactors(entries []units.Entry) ([]store.Factor, error) {
	linear := enumerable.Filter(entries, func(e units.Entry) bool {
		return e.Unit.Kind() != units.KindAbsolute
	})
	dims, groups := enumerable.GroupBy(linear, func(e units.Entry) *units.Unit {
		return units.Dimension(e.Unit)
	})

	var factors []store.Factor
	for _, dim := range dims {
		group := groups[dim]
		for _, from := range group {
			for _, to := range group {
				if from.Symbol == to.Symbol {
					continue
				}
				f, err := computeFactor(from, to)
				if err != nil {
					return nil, err
				}
				factors = append(factors, f)
			}
		}
	}
	return factors, nil
}

func runExport(w io.Writer, a *app) error {
	path, err := a.cfg.DatabasePath()
	if err != nil {
		return err
	}

	factors, err := exportFactors(a.catalog.entries)
	if err != nil {
		return err
	}

	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveAll(factors); err != nil {
		return err
	}

	slog.Info("exported factors", "count", len(factors), "database", path)
	fmt.Fprintf(w, "%d factors written to %s\n", len(factors), path)
	return nil
}
