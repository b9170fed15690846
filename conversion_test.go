// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"testing"

	"units/rational"
)

// ulps returns the distance between a and b in units of least precision.
func ulps(a, b float64) uint64 {
	x, y := math.Float64bits(a), math.Float64bits(b)
	if x > y {
		return x - y
	}
	return y - x
}

func TestSelfConversion(t *testing.T) {
	for _, u := range []*Unit{meter, centimeter, inch, Div(inch, second), degree, Dimensionless(), cube(Scaled(meter, rational.Frac(1, 1000000000)))} {
		if got := MustConversionFactor(u, u); got != 1 {
			t.Errorf("conversion factor(%v, %v) = %v, want 1", u, u, got)
		}
	}
}

func TestConversionFactor(t *testing.T) {
	nano := Scaled(meter, rational.Frac(1, 1000000000))

	tests := []struct {
		name     string
		from, to *Unit
		expected float64
		maxUlps  uint64
	}{
		{"defined as another unit", xmeter, meter, 1, 1},
		{"inch to centimeter", inch, centimeter, 2.54, 1},
		{"centimeter to inch", centimeter, inch, 100. / 254, 1},
		{"yard to foot", yard, foot, 3, 1},
		{"area", Mul(meter, meter), Mul(inch, foot), 1 / 0.00774192, 1},
		{"velocity", Div(centimeter, second), Div(inch, second), 100. / 254, 1},
		{"cubic nanometer", cube(nano), cube(meter), 1e-27, 1},
		{"inverse cubic nanometer", cube(meter), cube(nano), 1e27, 1},
		{"degree to radian", degree, radian, math.Pi / 180, 4},
		{"radian to degree", radian, degree, 180 / math.Pi, 4},
		{"named compound", sqMeter, Mul(centimeter, centimeter), 10000, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ConversionFactor(test.from, test.to)
			if err != nil {
				t.Fatalf("ConversionFactor(%v, %v) error: %v", test.from, test.to, err)
			}
			if d := ulps(got, test.expected); d > test.maxUlps {
				t.Errorf("ConversionFactor(%v, %v) = %v, want %v (%d ulps)", test.from, test.to, got, test.expected, d)
			}
		})
	}
}

func TestConversionFactorExactValues(t *testing.T) {
	if got := MustConversionFactor(inch, centimeter); got != 2.54 {
		t.Errorf("inch to centimeter = %v, want exactly 2.54", got)
	}
	if got := MustConversionFactor(centimeter, inch); got != 100./254 {
		t.Errorf("centimeter to inch = %v, want exactly 100./254", got)
	}
}

func TestExactConversionFactor(t *testing.T) {
	tests := []struct {
		name     string
		from, to *Unit
		expected rational.Ratio
		exact    bool
	}{
		{"inch to centimeter", inch, centimeter, rational.New(127, 50), true},
		{"area", Mul(meter, meter), Mul(inch, foot), rational.New(6250000, 48387), true},
		{"overflow", cube(Scaled(meter, rational.Frac(1, 1000000000))), cube(meter), rational.Ratio{}, false},
		{"computed", degree, radian, rational.Ratio{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, ok, err := ExactConversionFactor(test.from, test.to)
			if err != nil {
				t.Fatalf("ExactConversionFactor(%v, %v) error: %v", test.from, test.to, err)
			}
			if ok != test.exact {
				t.Fatalf("ExactConversionFactor(%v, %v) exact = %v, want %v", test.from, test.to, ok, test.exact)
			}
			if ok && r != test.expected {
				t.Errorf("ExactConversionFactor(%v, %v) = %v, want %v", test.from, test.to, r, test.expected)
			}
		})
	}
}

func TestConversionFactorErrors(t *testing.T) {
	if _, err := ConversionFactor(meter, second); !ErrNotConvertible.Has(err) {
		t.Errorf("ConversionFactor(meter, second) error = %v, want %v", err, ErrNotConvertible)
	}
	if _, err := ConversionFactor(Div(meter, second), meter); !ErrNotConvertible.Has(err) {
		t.Errorf("ConversionFactor(meter/second, meter) error = %v, want %v", err, ErrNotConvertible)
	}
	if _, err := ConversionFactor(AbsoluteOf(meter), meter); !ErrAbsoluteComposition.Has(err) {
		t.Errorf("ConversionFactor(absolute, meter) error = %v, want %v", err, ErrAbsoluteComposition)
	}
	if err := catch(func() { MustConversionFactor(radian, meter) }); !ErrNotConvertible.Has(err) {
		t.Errorf("MustConversionFactor(radian, meter) panic = %v, want %v", err, ErrNotConvertible)
	}
}

func TestConvertLinear(t *testing.T) {
	got, err := Convert(yard, inch, 2)
	if err != nil {
		t.Fatalf("Convert(yard, inch) error: %v", err)
	}
	if got != 72 {
		t.Errorf("Convert(yard, inch, 2) = %v, want 72", got)
	}
	if _, err := Convert(yard, second, 2); !ErrNotConvertible.Has(err) {
		t.Errorf("Convert(yard, second) error = %v, want %v", err, ErrNotConvertible)
	}
}
