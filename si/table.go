// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"units"
	"units/rational"
)

type prefix struct {
	symbol string
	name   string
	scale  rational.Scale
}

var prefixes = []prefix{
	{"k", "kilo", Kilo},
	{"c", "centi", Centi},
	{"m", "milli", Milli},
	{"u", "micro", Micro},
	{"n", "nano", Nano},
}

// prefixed returns the entries for u under each common prefix.
func prefixed(symbol, name string, u *units.Unit) []units.Entry {
	entries := make([]units.Entry, 0, len(prefixes))
	for _, p := range prefixes {
		entries = append(entries, units.Entry{
			Symbol:      p.symbol + symbol,
			Description: p.name + name,
			Unit:        units.Scaled(u, p.scale),
		})
	}
	return entries
}

// Table lists the SI units by symbol.
var Table = buildTable()

func buildTable() []units.Entry {
	table := []units.Entry{
		{Symbol: "m", Description: "meters", Unit: Meter},
		{Symbol: "g", Description: "grams", Unit: Gram},
		{Symbol: "s", Description: "seconds", Unit: Second},
		{Symbol: "K", Description: "kelvin", Unit: Kelvin},
		{Symbol: "mol", Description: "moles", Unit: Mole},
		{Symbol: "A", Description: "amperes", Unit: Ampere},
		{Symbol: "cd", Description: "candelas", Unit: Candela},
		{Symbol: "rad", Description: "radians", Unit: Radian},
		{Symbol: "sr", Description: "steradians", Unit: Steradian},

		{Symbol: "Hz", Description: "hertz", Unit: Hertz},
		{Symbol: "N", Description: "newtons", Unit: Newton},
		{Symbol: "Pa", Description: "pascals", Unit: Pascal},
		{Symbol: "J", Description: "joules", Unit: Joule},
		{Symbol: "W", Description: "watts", Unit: Watt},
		{Symbol: "C", Description: "coulombs", Unit: Coulomb},
		{Symbol: "V", Description: "volts", Unit: Volt},
		{Symbol: "F", Description: "farads", Unit: Farad},
		{Symbol: "ohm", Description: "ohms", Unit: Ohm},
		{Symbol: "S", Description: "siemens", Unit: Siemens},
		{Symbol: "Wb", Description: "webers", Unit: Weber},
		{Symbol: "T", Description: "teslas", Unit: Tesla},
		{Symbol: "H", Description: "henries", Unit: Henry},
		{Symbol: "lm", Description: "lumens", Unit: Lumen},
		{Symbol: "lx", Description: "lux", Unit: Lux},
		{Symbol: "Bq", Description: "becquerels", Unit: Becquerel},
		{Symbol: "Gy", Description: "grays", Unit: Gray},
		{Symbol: "Sv", Description: "sieverts", Unit: Sievert},
		{Symbol: "kat", Description: "katals", Unit: Katal},

		{Symbol: "min", Description: "minutes", Unit: Minute},
		{Symbol: "hr", Description: "hours", Unit: Hour},
		{Symbol: "l", Description: "liters", Unit: Liter},
		{Symbol: "deg", Description: "degrees", Unit: Degree},
	}

	table = append(table, prefixed("m", "meters", Meter)...)
	// the kg entry is Kilogram
	table = append(table, prefixed("g", "grams", Gram)...)
	table = append(table, prefixed("s", "seconds", Second)[1:]...)
	table = append(table, prefixed("l", "liters", Liter)[1:]...)
	table = append(table, units.Entry{Symbol: "dl", Description: "deciliters", Unit: units.Scaled(Liter, Deci)})
	return table
}
