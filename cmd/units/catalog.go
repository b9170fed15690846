// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"

	"github.com/zeebo/errs"

	"units"
	"units/customary"
	"units/dimensions"
	"units/si"
	"units/temperature"
)

// ErrUnknownUnit is returned for a symbol that is in no unit table.
var ErrUnknownUnit = errs.Class("unknown unit")

// catalog is the set of unit tables the command can look symbols up in.
type catalog struct {
	entries  []units.Entry
	bySymbol map[string]units.Entry
}

var defaultCatalog = mustCatalog(si.Table, customary.Table, temperature.Table)

func newCatalog(tables ...[]units.Entry) (*catalog, error) {
	c := &catalog{bySymbol: make(map[string]units.Entry)}
	for _, table := range tables {
		for _, entry := range table {
			if prev, ok := c.bySymbol[entry.Symbol]; ok {
				return nil, fmt.Errorf("symbol %q is both %s and %s", entry.Symbol, prev.Description, entry.Description)
			}
			c.bySymbol[entry.Symbol] = entry
			c.entries = append(c.entries, entry)
		}
	}
	return c, nil
}

func mustCatalog(tables ...[]units.Entry) *catalog {
	c, err := newCatalog(tables...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *catalog) lookup(symbol string) (units.Entry, error) {
	entry, ok := c.bySymbol[symbol]
	if !ok {
		return units.Entry{}, ErrUnknownUnit.New("%q", symbol)
	}
	return entry, nil
}

// dimension returns the dimension named by one of the dimensions.Table symbols.
func (c *catalog) dimension(name string) (*units.Unit, error) {
	for _, entry := range dimensions.Table {
		if entry.Symbol == name {
			return entry.Unit, nil
		}
	}
	return nil, ErrUnknownUnit.New("no dimension %q", name)
}
