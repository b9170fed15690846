// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package temperature defines the absolute temperature scales.
//
// Each scale is an absolute unit over si.Kelvin. Readings convert with
// units.Convert; the difference between two readings is measured in the
// scale's Difference unit (kelvin for Celsius, a 5/9 kelvin step for
// Fahrenheit and Rankine).
package temperature

import (
	"units"
	"units/rational"
	"units/si"
)

var (
	Kelvin     = units.AbsoluteOf(si.Kelvin)
	Celsius    = Kelvin.WithOffset(rational.Frac(-27315, 100))
	Fahrenheit = units.Scaled(Celsius, rational.Frac(5, 9)).WithOffset(rational.Frac(32, 1))
	Rankine    = units.Scaled(Kelvin, rational.Frac(5, 9))
)

var Table = []units.Entry{
	{Symbol: "absK", Description: "kelvin", Unit: Kelvin},
	{Symbol: "degC", Description: "celsius", Unit: Celsius},
	{Symbol: "°C", Description: "celsius", Unit: Celsius},
	{Symbol: "degF", Description: "fahrenheit", Unit: Fahrenheit},
	{Symbol: "°F", Description: "fahrenheit", Unit: Fahrenheit},
	{Symbol: "degR", Description: "rankine", Unit: Rankine},
	{Symbol: "°R", Description: "rankine", Unit: Rankine},
	{Symbol: "dC", Description: "delta celsius", Unit: units.Difference(Celsius)},
	{Symbol: "dF", Description: "delta fahrenheit", Unit: units.Difference(Fahrenheit)},
}
