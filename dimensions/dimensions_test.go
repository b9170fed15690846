// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dimensions

import (
	"testing"

	"units"
)

func TestDerivedDimensions(t *testing.T) {
	tests := []struct {
		name     string
		got      *units.Unit
		expected string
	}{
		{"velocity", Velocity, "length/time"},
		{"acceleration", Acceleration, "length/time^2"},
		{"force", Force, "length·mass/time^2"},
		{"energy", Energy, "length^2·mass/time^2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.got.String() != test.expected {
				t.Errorf("%s = %v, want %v", test.name, test.got, test.expected)
			}
			if units.Dimension(test.got) != test.got {
				t.Errorf("Dimension(%v) = %v, want itself", test.got, units.Dimension(test.got))
			}
		})
	}
}

func TestFundamentalDimensionsAreDistinct(t *testing.T) {
	seen := make(map[*units.Unit]string)
	for _, entry := range Table[:9] {
		if entry.Unit.Definition() != nil {
			t.Errorf("%s has a definition", entry.Symbol)
		}
		if other, ok := seen[entry.Unit]; ok {
			t.Errorf("%s and %s are the same unit", entry.Symbol, other)
		}
		seen[entry.Unit] = entry.Symbol
	}
}
