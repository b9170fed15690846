// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package units implements dimensional analysis over physical units.
//
// A unit is an immutable *Unit node of one of four shapes: a named base unit,
// a scaled unit (a unit times a constant), a compound unit (a sorted product
// of units raised to rational powers) and an absolute unit (a unit with an
// offset zero point, such as a temperature scale). Every node is interned, so
// two expressions that reduce to the same canonical unit return the same
// pointer:
//
//	units.Mul(meter, second) == units.Mul(second, meter)
//	units.Div(units.Mul(meter, second), second) == meter
//
// Scale factors are kept symbolically as exact ratios and are only multiplied
// together when a conversion factor is requested, so compound conversions
// lose no precision until the final rounding.
package units

import (
	"sync"

	"units/rational"
)

// Kind is the shape of a unit node.
type Kind int

const (
	KindBase Kind = iota
	KindScaled
	KindCompound
	KindAbsolute
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindScaled:
		return "scaled"
	case KindCompound:
		return "compound"
	case KindAbsolute:
		return "absolute"
	}
	return "unknown"
}

// Unit is a canonical unit. Units are created only through Define and the
// algebra in this package and are never modified afterwards; compare them
// with ==.
type Unit struct {
	kind Kind
	key  string

	// base units
	name string
	def  *Unit

	// scaled and absolute units wrap base; scale is the factor or the offset
	base  *Unit
	scale rational.Scale

	// compound units
	terms []Term

	dimOnce  sync.Once
	dim      *Unit
	flatOnce sync.Once
	flat     []atom
	flatErr  error
}

func (u *Unit) Kind() Kind {
	return u.kind
}

// Name returns the registered name of a base unit, or "" for other shapes.
func (u *Unit) Name() string {
	return u.name
}

// Definition returns the unit a base unit was defined in terms of, or nil for
// a fundamental dimension.
func (u *Unit) Definition() *Unit {
	return u.def
}

// Base returns the unit wrapped by a scaled or absolute unit.
func (u *Unit) Base() *Unit {
	return u.base
}

// Scale returns the factor of a scaled unit. Other shapes have scale 1.
func (u *Unit) Scale() rational.Scale {
	if u.kind != KindScaled {
		return rational.Identity
	}
	return u.scale
}

// Offset returns the offset of an absolute unit. Other shapes have offset 0.
func (u *Unit) Offset() rational.Scale {
	if u.kind != KindAbsolute {
		return rational.Scale{}
	}
	return u.scale
}

// Terms returns a copy of the (unit, exponent) pairs of a compound unit. Any
// other unit is a single term with exponent 1.
func (u *Unit) Terms() []Term {
	if u.kind == KindCompound {
		return append([]Term(nil), u.terms...)
	}
	return []Term{{Base: u, Exp: rational.One}}
}

// IsDimensionless reports whether u has no dimension, e.g. the empty
// compound unit or a scaled version of it.
func (u *Unit) IsDimensionless() bool {
	return Dimension(u) == Dimensionless()
}
