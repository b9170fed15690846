// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package customary defines the US customary units of length, mass and
// volume by their exact SI definitions.
package customary

import (
	"units"
	"units/rational"
	"units/si"
)

var (
	Inch = units.MustDefine("inch", units.Scaled(si.Meter, rational.Frac(254, 10000))) // by definition
	Foot = units.MustDefine("foot", units.Scaled(Inch, rational.Frac(12, 1)))
	Yard = units.MustDefine("yard", units.Scaled(Foot, rational.Frac(3, 1)))
	Mile = units.MustDefine("mile", units.Scaled(Foot, rational.Frac(5280, 1)))

	Pound = units.MustDefine("pound", units.Scaled(si.Gram, rational.Frac(45359237, 100000))) // by definition
	Ounce = units.MustDefine("ounce", units.Scaled(Pound, rational.Frac(1, 16)))

	Gallon     = units.MustDefine("gallon", units.Scaled(units.PowInt(Inch, 3), rational.Frac(231, 1))) // by definition
	Quart      = units.MustDefine("quart", units.Scaled(Gallon, rational.Frac(1, 4)))
	Pint       = units.MustDefine("pint", units.Scaled(Gallon, rational.Frac(1, 8)))
	Cup        = units.MustDefine("cup", units.Scaled(Gallon, rational.Frac(1, 16)))
	FluidOunce = units.MustDefine("fluid_ounce", units.Scaled(Gallon, rational.Frac(1, 128)))
)

var Table = []units.Entry{
	{Symbol: "in", Description: "inches", Unit: Inch},
	{Symbol: "ft", Description: "feet", Unit: Foot},
	{Symbol: "yd", Description: "yards", Unit: Yard},
	{Symbol: "mi", Description: "miles", Unit: Mile},

	{Symbol: "oz", Description: "ounces", Unit: Ounce},
	{Symbol: "lb", Description: "pounds", Unit: Pound},

	{Symbol: "foz", Description: "fl. ounces", Unit: FluidOunce},
	{Symbol: "cup", Description: "cups", Unit: Cup},
	{Symbol: "pt", Description: "pints", Unit: Pint},
	{Symbol: "qt", Description: "quarts", Unit: Quart},
	{Symbol: "gal", Description: "us gallons", Unit: Gallon},
}
