// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"math"
	"testing"

	"units"
	"units/dimensions"
	"units/rational"
)

func TestDerivedUnits(t *testing.T) {
	tests := []struct {
		name      string
		u         *units.Unit
		dimension *units.Unit
		expected  string
	}{
		{"hertz", Hertz, units.PowInt(dimensions.Time, -1), "1/second"},
		{"newton", Newton, dimensions.Force, "meter·(1000·gram)/second^2"},
		{"joule", Joule, dimensions.Energy, "meter^2·(1000·gram)/second^2"},
		{"watt", Watt, units.Div(dimensions.Energy, dimensions.Time), "meter^2·(1000·gram)/second^3"},
		{"coulomb", Coulomb, units.Mul(dimensions.Current, dimensions.Time), "ampere·second"},
		{"katal", Katal, units.Div(dimensions.Amount, dimensions.Time), "mole/second"},
		{"lumen", Lumen, units.Mul(dimensions.LuminousIntensity, dimensions.SolidAngle), "candela·steradian"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.u.String(); got != test.expected {
				t.Errorf("%s = %q, want %q", test.name, got, test.expected)
			}
			if got := units.Dimension(test.u); got != test.dimension {
				t.Errorf("Dimension(%s) = %v, want %v", test.name, got, test.dimension)
			}
		})
	}
}

func TestEquivalentDefinitions(t *testing.T) {
	if Becquerel != Hertz {
		t.Errorf("becquerel %v != hertz %v", Becquerel, Hertz)
	}
	if Gray != Sievert {
		t.Errorf("gray %v != sievert %v", Gray, Sievert)
	}
	if units.Mul(Ohm, Siemens) != units.Dimensionless() {
		t.Errorf("ohm*siemens = %v, want dimensionless", units.Mul(Ohm, Siemens))
	}
	if units.Scaled(units.Scaled(Gram, Milli), Mega) != Kilogram {
		t.Errorf("mega milligram is not the kilogram")
	}
}

func TestConversions(t *testing.T) {
	erg := units.Div(units.Mul(Gram, units.PowInt(units.Scaled(Meter, Centi), 2)), units.PowInt(Second, 2))

	tests := []struct {
		name     string
		from, to *units.Unit
		expected float64
	}{
		{"kilogram to gram", Kilogram, Gram, 1000},
		{"hour to second", Hour, Second, 3600},
		{"liter to cubic meter", Liter, units.PowInt(Meter, 3), 0.001},
		{"kilometer to nanometer", units.Scaled(Meter, Kilo), units.Scaled(Meter, Nano), 1e12},
		{"exameter to attometer", units.Scaled(Meter, Exa), units.Scaled(Meter, Atto), 1e36},
		{"joule to erg", Joule, erg, 1e7},
		{"kilowatt hour to joule", units.Mul(units.Scaled(Watt, Kilo), Hour), Joule, 3.6e6},
		{"pascal to newton per square centimeter", Pascal, units.Div(Newton, units.PowInt(units.Scaled(Meter, Centi), 2)), 1e-4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := units.ConversionFactor(test.from, test.to)
			if err != nil {
				t.Fatalf("ConversionFactor(%v, %v) error: %v", test.from, test.to, err)
			}
			if math.Abs(got-test.expected) > 1e-15*test.expected {
				t.Errorf("ConversionFactor(%v, %v) = %v, want %v", test.from, test.to, got, test.expected)
			}
		})
	}
}

func TestDegree(t *testing.T) {
	got := units.MustConversionFactor(units.Scaled(Degree, rational.Frac(180, 1)), Radian)
	if math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("180 degrees = %v radians, want pi", got)
	}
}

func TestTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range Table {
		if seen[entry.Symbol] {
			t.Errorf("duplicate symbol %q", entry.Symbol)
		}
		seen[entry.Symbol] = true
		if entry.Unit == nil {
			t.Errorf("%q has no unit", entry.Symbol)
		}
	}
	for _, symbol := range []string{"m", "kg", "cm", "mm", "ms", "ml", "dl", "N", "ohm", "deg"} {
		if !seen[symbol] {
			t.Errorf("missing symbol %q", symbol)
		}
	}
}
