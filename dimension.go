// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"units/internal/enumerable"
	"units/rational"
)

// Dimension returns the pure dimension of u: u with every scale factor and
// offset removed and every defined unit replaced by its definition, down to
// the fundamental dimensions. Two units are convertible exactly when their
// dimensions are the same unit.
func Dimension(u *Unit) *Unit {
	u.dimOnce.Do(func() {
		switch u.kind {
		case KindBase:
			if u.def == nil {
				u.dim = u
			} else {
				u.dim = Dimension(u.def)
			}
		case KindScaled, KindAbsolute:
			u.dim = Dimension(u.base)
		case KindCompound:
			u.dim = enumerable.Fold(u.terms, dimensionless, func(acc *Unit, t Term) *Unit {
				return Mul(acc, Pow(Dimension(t.Base), t.Exp))
			})
		}
	})
	return u.dim
}

// HasSameDimension reports whether a and b measure the same quantity.
func HasSameDimension(a, b *Unit) bool {
	return Dimension(a) == Dimension(b)
}

// flattenScale returns every scale factor inside u as a list of
// (factor, exponent) atoms sorted by scale order, with equal factors merged.
// It fails only if an exponent overflows.
func flattenScale(u *Unit) ([]atom, error) {
	u.flatOnce.Do(func() {
		u.flat, u.flatErr = computeFlat(u)
	})
	return u.flat, u.flatErr
}

func computeFlat(u *Unit) ([]atom, error) {
	switch u.kind {
	case KindBase:
		if u.def == nil {
			return nil, nil
		}
		return flattenScale(u.def)
	case KindScaled:
		base, err := flattenScale(u.base)
		if err != nil {
			return nil, err
		}
		return merge(base, []atom{{Base: u.scale, Exp: rational.One}}, compareScales)
	case KindAbsolute:
		return flattenScale(u.base)
	}

	var flat []atom
	for _, t := range u.terms {
		atoms, err := flattenScale(t.Base)
		if err != nil {
			return nil, err
		}
		if atoms, err = raise(atoms, t.Exp); err != nil {
			return nil, err
		}
		if flat, err = merge(flat, atoms, compareScales); err != nil {
			return nil, err
		}
	}
	return flat, nil
}
