// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"units"
	"units/internal/enumerable"
)

type listItem struct {
	Symbol      string `yaml:"symbol"`
	Description string `yaml:"description"`
	Unit        string `yaml:"unit"`
	Dimension   string `yaml:"dimension"`
}

func listCmd(a *app) *cobra.Command {
	var dimension, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the unit symbols grouped by dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout(), a, dimension, output)
		},
	}

	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "only list units of this dimension, e.g. length")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or yaml")
	return cmd
}

func runList(w io.Writer, a *app, dimension, output string) error {
	entries := a.catalog.entries
	if dimension != "" {
		dim, err := a.catalog.dimension(dimension)
		if err != nil {
			return err
		}
		entries = enumerable.Filter(entries, func(e units.Entry) bool {
			return units.Dimension(e.Unit) == dim
		})
	}

	items := enumerable.Map(entries, func(e units.Entry) listItem {
		return listItem{
			Symbol:      e.Symbol,
			Description: e.Description,
			Unit:        e.Unit.String(),
			Dimension:   units.Dimension(e.Unit).String(),
		}
	})

	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "table":
	default:
		return fmt.Errorf("unknown output format %q: want table|yaml", output)
	}

	dims, groups := enumerable.GroupBy(items, func(item listItem) string { return item.Dimension })
	for i, dim := range dims {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, dim)
		rows := enumerable.Map(groups[dim], func(item listItem) []string {
			return []string{item.Symbol, item.Description, item.Unit}
		})
		printTable(w, "  ", rows)
	}
	return nil
}
