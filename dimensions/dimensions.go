// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package dimensions defines the fundamental dimensions that every unit table
// is built on, and a few derived ones.
package dimensions

import "units"

var (
	Length            = units.MustDefine("length", nil)
	Mass              = units.MustDefine("mass", nil)
	Time              = units.MustDefine("time", nil)
	Temperature       = units.MustDefine("temperature", nil)
	Amount            = units.MustDefine("amount", nil)
	Current           = units.MustDefine("current", nil)
	LuminousIntensity = units.MustDefine("luminous_intensity", nil)
	// technically dimensionless, but kept distinct
	Angle      = units.MustDefine("angle", nil)
	SolidAngle = units.MustDefine("solid_angle", nil)

	Velocity     = units.Div(Length, Time)
	Acceleration = units.Div(Velocity, Time)
	Force        = units.Mul(Mass, Acceleration)
	Energy       = units.Mul(Force, Length)
)

var Table = []units.Entry{
	{Symbol: "length", Description: "length", Unit: Length},
	{Symbol: "mass", Description: "mass", Unit: Mass},
	{Symbol: "time", Description: "time", Unit: Time},
	{Symbol: "temperature", Description: "temperature", Unit: Temperature},
	{Symbol: "amount", Description: "amount of substance", Unit: Amount},
	{Symbol: "current", Description: "electric current", Unit: Current},
	{Symbol: "luminous_intensity", Description: "luminous intensity", Unit: LuminousIntensity},
	{Symbol: "angle", Description: "plane angle", Unit: Angle},
	{Symbol: "solid_angle", Description: "solid angle", Unit: SolidAngle},
	{Symbol: "velocity", Description: "length per time", Unit: Velocity},
	{Symbol: "acceleration", Description: "velocity per time", Unit: Acceleration},
	{Symbol: "force", Description: "mass times acceleration", Unit: Force},
	{Symbol: "energy", Description: "force times length", Unit: Energy},
}
