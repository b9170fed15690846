// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// formatNumber shows v with precision digits after the decimal point and
// trailing zeros removed. Values too small or too large for that switch to
// exponent notation.
func formatNumber(v float64, precision int) string {
	if a := math.Abs(v); v != 0 && (a < math.Pow10(-precision) || a >= 1e15) {
		s := strconv.FormatFloat(v, 'e', precision, 64)
		mantissa, exponent, _ := strings.Cut(s, "e")
		return trimZeros(mantissa) + "e" + exponent
	}

	s := trimZeros(strconv.FormatFloat(v, 'f', precision, 64))
	if s == "-0" {
		return "0"
	}
	return s
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// splitNumber splits a number string into integer and fractional parts
// Returns (integerPart, fractionalPart) where fractionalPart includes the decimal point
func splitNumber(str string) (string, string) {
	if strings.Contains(str, ".") {
		parts := strings.SplitN(str, ".", 2)
		return parts[0], "." + parts[1]
	}
	// Integer - no fractional part
	return str, ""
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

func maxWidths(numbers []string) ColumnWidths {
	var widths ColumnWidths
	for _, str := range numbers {
		intPart, fracPart := splitNumber(str)
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}
	return widths
}

// printColumn prints one number per line aligned on the units digit, each
// followed by its suffix if it has one.
func printColumn(w io.Writer, numbers []string, suffixes []string) {
	widths := maxWidths(numbers)

	for i, str := range numbers {
		intPart, fracPart := splitNumber(str)

		// right-align integer part, left-align fractional part
		fmt.Fprintf(w, "%*s%s", widths.integerWidth, intPart, fracPart)

		if i < len(suffixes) && suffixes[i] != "" {
			// pad fractional part to keep the suffixes aligned
			padding := widths.fractionalWidth - len(fracPart)
			fmt.Fprintf(w, "%*s %s", padding, "", suffixes[i])
		}

		fmt.Fprintln(w)
	}
}

// printTable prints rows as left-aligned columns separated by two spaces.
func printTable(w io.Writer, indent string, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString(indent)
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))+2))
		}
		fmt.Fprintln(w, sb.String())
	}
}
