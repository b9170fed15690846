// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math/big"
	"slices"

	"units/rational"
)

var dimensionless = intern(&Unit{kind: KindCompound})

// Dimensionless returns the empty compound unit.
func Dimensionless() *Unit {
	return dimensionless
}

// Mul returns the canonical product a*b. Mul panics with an
// ErrAbsoluteComposition error if either operand is an absolute unit, and
// with an ErrOverflow error if a summed exponent overflows int64.
func Mul(a, b *Unit) *Unit {
	return must(TryMul(a, b))
}

// TryMul is like Mul but returns the error instead of panicking.
func TryMul(a, b *Unit) (*Unit, error) {
	if err := checkLinear(a, b); err != nil {
		return nil, err
	}
	terms, err := merge(asTerms(a), asTerms(b), Compare)
	if err != nil {
		return nil, ErrOverflow.Wrap(err)
	}
	return fromTerms(terms), nil
}

// Div returns the canonical quotient a/b.
func Div(a, b *Unit) *Unit {
	return Mul(a, Pow(b, rational.Int(-1)))
}

// Pow returns u raised to the rational power e. It panics like Mul.
func Pow(u *Unit, e rational.Ratio) *Unit {
	return must(TryPow(u, e))
}

// TryPow is like Pow but returns the error instead of panicking.
func TryPow(u *Unit, e rational.Ratio) (*Unit, error) {
	if err := checkLinear(u); err != nil {
		return nil, err
	}
	if e.IsZero() {
		return dimensionless, nil
	}
	terms, err := raise(asTerms(u), e)
	if err != nil {
		return nil, ErrOverflow.Wrap(err)
	}
	return fromTerms(terms), nil
}

func must(u *Unit, err error) *Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// PowInt returns u raised to the integer power n.
func PowInt(u *Unit, n int64) *Unit {
	return Pow(u, rational.Int(n))
}

// Root returns the n-th root of u.
func Root(u *Unit, n int64) *Unit {
	return Pow(u, rational.New(1, n))
}

// Scaled returns u multiplied by the positive constant s. Nested scaled units
// fold together: exact factors multiply into a single layer, a factor of
// exactly 1 disappears, and computed factors stay as separate layers in scale
// order so that the result does not depend on the order they were applied.
//
// Scaling an absolute unit scales the wrapped unit and divides the offset,
// keeping the zero point fixed.
func Scaled(u *Unit, s rational.Scale) *Unit {
	if s.Sign() <= 0 {
		panic(ErrInvalidScale.New("scale of %v must be positive, got %v", u, s))
	}
	if u.kind == KindAbsolute {
		return NewAbsolute(Scaled(u.base, s), u.scale.Div(s))
	}

	// exact factors, including ratios too large for int64, multiply into
	// one layer; computed ones stay separate
	exact := big.NewRat(1, 1)
	var computed []rational.Scale
	collect := func(s rational.Scale) {
		for _, f := range s.Factors() {
			if r, ok := f.BigRat(); ok {
				exact.Mul(exact, r)
			} else {
				computed = append(computed, f)
			}
		}
	}

	collect(s)
	for u.kind == KindScaled {
		collect(u.scale)
		u = u.base
	}
	slices.SortStableFunc(computed, compareScales)

	if inner := rational.Big(exact); !inner.IsOne() {
		u = intern(&Unit{kind: KindScaled, base: u, scale: inner})
	}
	for _, c := range computed {
		u = intern(&Unit{kind: KindScaled, base: u, scale: c})
	}
	return u
}

// Times returns u scaled by s.
func (u *Unit) Times(s rational.Scale) *Unit {
	return Scaled(u, s)
}

func checkLinear(us ...*Unit) error {
	for _, u := range us {
		if u.kind == KindAbsolute {
			return ErrAbsoluteComposition.New("absolute unit %v cannot be combined with other units", u)
		}
	}
	return nil
}

// asTerms returns the compound form of a linear unit.
func asTerms(u *Unit) []Term {
	if u.kind == KindCompound {
		return u.terms
	}
	return []Term{{Base: u, Exp: rational.One}}
}

// fromTerms returns the canonical unit for sorted, merged terms.
func fromTerms(terms []Term) *Unit {
	switch {
	case len(terms) == 0:
		return dimensionless
	case len(terms) == 1 && terms[0].Exp.IsOne():
		return terms[0].Base
	}
	return intern(&Unit{kind: KindCompound, terms: terms})
}
