// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package customary

import (
	"testing"

	"units"
	"units/rational"
	"units/si"
)

func TestExactFactors(t *testing.T) {
	tests := []struct {
		name     string
		from, to *units.Unit
		expected rational.Ratio
	}{
		{"inch to centimeter", Inch, units.Scaled(si.Meter, si.Centi), rational.New(127, 50)},
		{"centimeter to inch", units.Scaled(si.Meter, si.Centi), Inch, rational.New(50, 127)},
		{"mile to foot", Mile, Foot, rational.Int(5280)},
		{"mile to kilometer", Mile, units.Scaled(si.Meter, si.Kilo), rational.New(201168, 125000)},
		{"pound to kilogram", Pound, si.Kilogram, rational.New(45359237, 100000000)},
		{"gallon to liter", Gallon, si.Liter, rational.New(473176473, 125000000)},
		{"gallon to fluid ounce", Gallon, FluidOunce, rational.Int(128)},
		{"square foot to square inch", units.PowInt(Foot, 2), units.PowInt(Inch, 2), rational.Int(144)},
		{"miles per hour to feet per second", units.Div(Mile, si.Hour), units.Div(Foot, si.Second), rational.New(22, 15)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, ok, err := units.ExactConversionFactor(test.from, test.to)
			if err != nil {
				t.Fatalf("ExactConversionFactor(%v, %v) error: %v", test.from, test.to, err)
			}
			if !ok {
				t.Fatalf("ExactConversionFactor(%v, %v) is not exact", test.from, test.to)
			}
			if r != test.expected {
				t.Errorf("ExactConversionFactor(%v, %v) = %v, want %v", test.from, test.to, r, test.expected)
			}
		})
	}
}

func TestInchCentimeter(t *testing.T) {
	cm := units.Scaled(si.Meter, si.Centi)
	if got := units.MustConversionFactor(Inch, cm); got != 2.54 {
		t.Errorf("inch to centimeter = %v, want 2.54", got)
	}
	if got := units.MustConversionFactor(cm, Inch); got != 100.0/254 {
		t.Errorf("centimeter to inch = %v, want %v", got, 100.0/254)
	}
}
