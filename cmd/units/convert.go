// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"units/internal/enumerable"
	"units/quantity"
)

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FROM TO VALUE...",
		Short: "Convert values from one unit to another",
		Long: helpText(`
            Convert each VALUE measured in FROM into TO.

            Absolute temperatures shift between zero points:
              units convert degC degF 100   prints 212 degF
            Temperature differences only scale:
              units convert dC dF 100       prints 180 dF
        `),
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), a, args[0], args[1], args[2:])
		},
	}

	// negative values are arguments, not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runConvert(w io.Writer, a *app, fromSymbol, toSymbol string, args []string) error {
	from, err := a.catalog.lookup(fromSymbol)
	if err != nil {
		return err
	}
	to, err := a.catalog.lookup(toSymbol)
	if err != nil {
		return err
	}

	numbers := make([]string, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as a number", arg)
		}

		q, err := quantity.New(from.Unit, v).In(to.Unit)
		if err != nil {
			return fmt.Errorf("%s to %s: %w", fromSymbol, toSymbol, err)
		}
		numbers = append(numbers, formatNumber(q.Value(), a.cfg.Precision))
	}

	suffixes := enumerable.Map(numbers, func(string) string { return toSymbol })
	printColumn(w, numbers, suffixes)
	return nil
}
