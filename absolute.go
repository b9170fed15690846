// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math/big"

	"units/rational"
)

// NewAbsolute returns the absolute unit that measures in the steps of u from
// a shifted zero point. The offset is the reading on the new scale at the
// zero of u, so celsius is NewAbsolute(kelvin, -273.15). Wrapping an absolute
// unit adds the offsets.
//
// Absolute units cannot be multiplied, divided or raised to powers; they
// support scaling, WithOffset, AddUnits and SubUnits, and Convert.
func NewAbsolute(u *Unit, offset rational.Scale) *Unit {
	if u.kind == KindAbsolute {
		return NewAbsolute(u.base, u.scale.Add(offset))
	}
	return intern(&Unit{kind: KindAbsolute, base: u, scale: offset})
}

// AbsoluteOf returns u as an absolute unit sharing its zero point.
func AbsoluteOf(u *Unit) *Unit {
	return NewAbsolute(u, rational.Scale{})
}

// WithOffset returns an absolute unit with delta added to the offset of u.
// It panics with an ErrAbsoluteComposition error if u is not absolute.
func (u *Unit) WithOffset(delta rational.Scale) *Unit {
	if u.kind != KindAbsolute {
		panic(ErrAbsoluteComposition.New("%v is not an absolute unit", u))
	}
	return NewAbsolute(u, delta)
}

// Difference returns the linear unit that measures differences between
// readings of u: u with every absolute layer removed. It returns any other
// unit unchanged.
func Difference(u *Unit) *Unit {
	switch u.kind {
	case KindAbsolute:
		return Difference(u.base)
	case KindScaled:
		return Scaled(Difference(u.base), u.scale)
	}
	return u
}

// BaseOffset returns the reading of u at the zero point of its underlying
// linear unit: the offsets of all absolute layers added together, each scaled
// layer multiplying the offset accumulated beneath it.
func BaseOffset(u *Unit) rational.Scale {
	switch u.kind {
	case KindAbsolute:
		return BaseOffset(u.base).Add(u.scale)
	case KindScaled:
		return BaseOffset(u.base).Mul(u.scale)
	}
	return rational.Scale{}
}

// Convert converts value from one unit to another. Two linear units convert
// by their conversion factor; two absolute units also shift between their
// zero points. Mixing an absolute unit with a linear one is an error.
func Convert(from, to *Unit, value float64) (float64, error) {
	if from == to {
		return value, nil
	}

	fromAbsolute, toAbsolute := from.kind == KindAbsolute, to.kind == KindAbsolute
	if fromAbsolute != toAbsolute {
		return 0, ErrAbsoluteComposition.New("cannot convert between absolute and linear units %v and %v", from, to)
	}
	if !fromAbsolute {
		f, err := ConversionFactor(from, to)
		if err != nil {
			return 0, err
		}
		return value * f, nil
	}

	p, err := conversion(Difference(from), Difference(to))
	if err != nil {
		return 0, err
	}
	fromOffset, toOffset := BaseOffset(from), BaseOffset(to)

	if v, ok := convertExact(value, fromOffset, p, toOffset); ok {
		return v, nil
	}
	return (value-fromOffset.Float64())*p.Float64() + toOffset.Float64(), nil
}

// convertExact evaluates (value - fromOffset) * factor + toOffset exactly,
// rounding once, when every term has an exact form.
func convertExact(value float64, fromOffset rational.Scale, p *rational.Product, toOffset rational.Scale) (float64, bool) {
	factor, ok := p.Exact()
	if !ok {
		return 0, false
	}
	o1, ok1 := fromOffset.Ratio()
	o2, ok2 := toOffset.Ratio()
	if !ok1 || !ok2 {
		return 0, false
	}
	v := new(big.Rat)
	if v.SetFloat64(value) == nil {
		return 0, false
	}

	v.Sub(v, o1.Rat())
	v.Mul(v, factor.Rat())
	v.Add(v, o2.Rat())
	f, _ := v.Float64()
	return f, true
}

// AddUnits returns the unit of the sum of quantities in a and b. A linear
// unit adds only to itself; an absolute unit adds to its Difference unit,
// from either side.
func AddUnits(a, b *Unit) (*Unit, error) {
	switch {
	case a.kind != KindAbsolute && a == b:
		return a, nil
	case a.kind == KindAbsolute && b.kind != KindAbsolute && b == Difference(a):
		return a, nil
	case b.kind == KindAbsolute && a.kind != KindAbsolute && a == Difference(b):
		return b, nil
	}
	return nil, ErrIncompatible.New("cannot add %v and %v", a, b)
}

// SubUnits returns the unit of the difference of quantities in a and b. Two
// readings of the same absolute unit subtract to its Difference unit, and a
// Difference subtracted from an absolute unit keeps the absolute unit.
func SubUnits(a, b *Unit) (*Unit, error) {
	switch {
	case a.kind != KindAbsolute && a == b:
		return a, nil
	case a.kind == KindAbsolute && a == b:
		return Difference(a), nil
	case a.kind == KindAbsolute && b.kind != KindAbsolute && b == Difference(a):
		return a, nil
	}
	return nil, ErrIncompatible.New("cannot subtract %v from %v", b, a)
}
