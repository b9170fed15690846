// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package temperature

import (
	"math"
	"testing"

	"units"
	"units/si"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		from, to *units.Unit
		value    float64
		expected float64
	}{
		{Celsius, Fahrenheit, 100, 212},
		{Celsius, Fahrenheit, 0, 32},
		{Celsius, Fahrenheit, -40, -40},
		{Fahrenheit, Celsius, 212, 100},
		{Fahrenheit, Celsius, 98.6, 37},
		{Celsius, Kelvin, 0, 273.15},
		{Kelvin, Celsius, 0, -273.15},
		{Kelvin, Fahrenheit, 0, -459.67},
		{Rankine, Fahrenheit, 0, -459.67},
		{Fahrenheit, Rankine, 32, 491.67},
		{Kelvin, Rankine, 100, 180},
	}

	for _, test := range tests {
		got, err := units.Convert(test.from, test.to, test.value)
		if err != nil {
			t.Fatalf("Convert(%v, %v, %v) error: %v", test.from, test.to, test.value, err)
		}
		if math.Abs(got-test.expected) > 1e-12 {
			t.Errorf("Convert(%v, %v, %v) = %v, want %v", test.from, test.to, test.value, got, test.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	scales := []*units.Unit{Kelvin, Celsius, Fahrenheit, Rankine}
	for _, from := range scales {
		for _, to := range scales {
			for _, v := range []float64{-300, -40, 0, 21.5, 1000} {
				there, err := units.Convert(from, to, v)
				if err != nil {
					t.Fatalf("Convert(%v, %v, %v) error: %v", from, to, v, err)
				}
				back, err := units.Convert(to, from, there)
				if err != nil {
					t.Fatalf("Convert(%v, %v, %v) error: %v", to, from, there, err)
				}
				if math.Abs(back-v) > 1e-9 {
					t.Errorf("%v %v -> %v %v -> %v", v, from, there, to, back)
				}
			}
		}
	}
}

func TestConvertToItselfIsExact(t *testing.T) {
	for _, v := range []float64{0.1, -273.15, 1e-300, math.MaxFloat64} {
		if got, _ := units.Convert(Celsius, Celsius, v); got != v {
			t.Errorf("Convert(celsius, celsius, %v) = %v", v, got)
		}
	}
}

func TestDifferences(t *testing.T) {
	if units.Difference(Celsius) != si.Kelvin {
		t.Errorf("Difference(celsius) = %v, want kelvin", units.Difference(Celsius))
	}
	if units.Difference(Fahrenheit) != units.Difference(Rankine) {
		t.Errorf("Difference(fahrenheit) = %v, Difference(rankine) = %v", units.Difference(Fahrenheit), units.Difference(Rankine))
	}

	u, err := units.SubUnits(Fahrenheit, Fahrenheit)
	if err != nil || u != units.Difference(Fahrenheit) {
		t.Errorf("SubUnits(fahrenheit, fahrenheit) = %v, %v", u, err)
	}
	if _, err := units.SubUnits(Fahrenheit, Rankine); !units.ErrIncompatible.Has(err) {
		t.Errorf("SubUnits(fahrenheit, rankine) error = %v, want %v", err, units.ErrIncompatible)
	}
}

func TestNotLinear(t *testing.T) {
	if _, err := units.ConversionFactor(Celsius, Fahrenheit); !units.ErrAbsoluteComposition.Has(err) {
		t.Errorf("ConversionFactor(celsius, fahrenheit) error = %v, want %v", err, units.ErrAbsoluteComposition)
	}
	if !units.HasSameDimension(Celsius, si.Kelvin) {
		t.Errorf("celsius and kelvin have different dimensions")
	}
}
