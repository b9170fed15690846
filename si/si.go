// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package si defines the International System of Units: the base units, the
// named derived units, and the decimal prefixes.
package si

import (
	"math"

	"units"
	"units/dimensions"
	"units/rational"
)

// Decimal prefixes. Zetta, yotta and beyond do not fit an int64 ratio.
var (
	Exa   = rational.Frac(1000000000000000000, 1)
	Peta  = rational.Frac(1000000000000000, 1)
	Tera  = rational.Frac(1000000000000, 1)
	Giga  = rational.Frac(1000000000, 1)
	Mega  = rational.Frac(1000000, 1)
	Kilo  = rational.Frac(1000, 1)
	Hecto = rational.Frac(100, 1)
	Deca  = rational.Frac(10, 1)
	Deci  = rational.Frac(1, 10)
	Centi = rational.Frac(1, 100)
	Milli = rational.Frac(1, 1000)
	Micro = rational.Frac(1, 1000000)
	Nano  = rational.Frac(1, 1000000000)
	Pico  = rational.Frac(1, 1000000000000)
	Femto = rational.Frac(1, 1000000000000000)
	Atto  = rational.Frac(1, 1000000000000000000)
)

var (
	Meter     = units.MustDefine("meter", dimensions.Length)
	Gram      = units.MustDefine("gram", dimensions.Mass)
	Second    = units.MustDefine("second", dimensions.Time)
	Kelvin    = units.MustDefine("kelvin", dimensions.Temperature)
	Mole      = units.MustDefine("mole", dimensions.Amount)
	Ampere    = units.MustDefine("ampere", dimensions.Current)
	Candela   = units.MustDefine("candela", dimensions.LuminousIntensity)
	Radian    = units.MustDefine("radian", dimensions.Angle)
	Steradian = units.MustDefine("steradian", dimensions.SolidAngle)

	// The kilogram is the true base unit, but defining it from the gram
	// keeps the prefixes uniform.
	Kilogram = units.Scaled(Gram, Kilo)
)

var (
	Hertz     = units.PowInt(Second, -1)
	Newton    = units.Div(units.Mul(Meter, Kilogram), units.PowInt(Second, 2))
	Pascal    = units.Div(Newton, units.PowInt(Meter, 2))
	Joule     = units.Mul(Newton, Meter)
	Watt      = units.Div(Joule, Second)
	Coulomb   = units.Mul(Second, Ampere)
	Volt      = units.Div(Watt, Ampere)
	Farad     = units.Div(Coulomb, Volt)
	Ohm       = units.Div(Volt, Ampere)
	Siemens   = units.Div(Ampere, Volt)
	Weber     = units.Mul(Volt, Second)
	Tesla     = units.Div(Weber, units.PowInt(Meter, 2))
	Henry     = units.Div(Weber, Ampere)
	Lumen     = units.Mul(Candela, Steradian)
	Lux       = units.Div(Lumen, units.PowInt(Meter, 2))
	Becquerel = units.PowInt(Second, -1)
	Gray      = units.Div(Joule, Kilogram)
	Sievert   = units.Div(Joule, Kilogram)
	Katal     = units.Div(Mole, Second)
)

// Accepted for use with SI.
var (
	Minute = units.MustDefine("minute", units.Scaled(Second, rational.Frac(60, 1)))
	Hour   = units.MustDefine("hour", units.Scaled(Minute, rational.Frac(60, 1)))
	Liter  = units.MustDefine("liter", units.Scaled(units.PowInt(Meter, 3), Milli))
	Degree = units.MustDefine("degree", units.Scaled(Radian, rational.Computed("pi/180", math.Pi/180)))
)
