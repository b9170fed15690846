// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"log/slog"

	"units/internal/enumerable"
	"units/rational"
)

// ConversionFactor returns the factor f such that a value v measured in from
// is v*f measured in to. The scale factors of from/to are multiplied in exact
// rational arithmetic for as long as the product fits, so the result is
// within one unit in the last place even for extreme magnitudes.
//
// Absolute units have no conversion factor; use Convert.
func ConversionFactor(from, to *Unit) (float64, error) {
	p, err := conversion(from, to)
	if err != nil {
		return 0, err
	}
	return p.Float64(), nil
}

// ExactConversionFactor is like ConversionFactor but also returns the factor
// as an exact ratio when it has one. ok is false when the factor involves a
// computed scale or does not fit an int64 ratio.
func ExactConversionFactor(from, to *Unit) (r rational.Ratio, ok bool, err error) {
	p, err := conversion(from, to)
	if err != nil {
		return rational.Ratio{}, false, err
	}
	r, ok = p.Exact()
	return r, ok, nil
}

// MustConversionFactor is like ConversionFactor but panics on error.
func MustConversionFactor(from, to *Unit) float64 {
	f, err := ConversionFactor(from, to)
	if err != nil {
		panic(err)
	}
	return f
}

func conversion(from, to *Unit) (*rational.Product, error) {
	if from.kind == KindAbsolute || to.kind == KindAbsolute {
		return nil, ErrAbsoluteComposition.New("no conversion factor between %v and %v, use Convert for absolute units", from, to)
	}
	if from == to {
		return rational.NewProduct(), nil
	}
	if Dimension(from) != Dimension(to) {
		return nil, ErrNotConvertible.New("%v has dimension %v, %v has dimension %v", from, Dimension(from), to, Dimension(to))
	}

	atoms, err := flattenScale(Div(from, to))
	if err != nil {
		return nil, ErrOverflow.Wrap(err)
	}
	p := enumerable.Fold(atoms, rational.NewProduct(), func(p *rational.Product, a atom) *rational.Product {
		return p.MulPow(a.Base, a.Exp)
	})
	if _, ok := p.Exact(); !ok {
		slog.Debug("conversion factor computed in floating point", "from", from, "to", to)
	}
	return p, nil
}
