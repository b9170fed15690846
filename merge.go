// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "units/rational"

// Power is a base raised to a rational exponent.
type Power[B any] struct {
	Base B
	Exp  rational.Ratio
}

// Term is one (unit, exponent) pair of a compound unit.
type Term = Power[*Unit]

// atom is one scale factor of a unit's flattened scale list.
type atom = Power[rational.Scale]

func compareScales(a, b rational.Scale) int {
	return a.Cmp(b)
}

// merge combines two sequences sorted by compare into one sorted sequence.
// Equal bases have their exponents summed and are dropped when the sum is
// zero. Both inputs are left untouched.
func merge[B any](a, b []Power[B], compare func(B, B) int) ([]Power[B], error) {
	merged := make([]Power[B], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := compare(a[i].Base, b[j].Base)
		switch {
		case c < 0:
			merged = append(merged, a[i])
			i++
		case c > 0:
			merged = append(merged, b[j])
			j++
		default:
			exp, err := rational.Add(a[i].Exp, b[j].Exp)
			if err != nil {
				return nil, err
			}
			if !exp.IsZero() {
				merged = append(merged, Power[B]{Base: a[i].Base, Exp: exp})
			}
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...), nil
}

// raise multiplies every exponent in powers by e.
func raise[B any](powers []Power[B], e rational.Ratio) ([]Power[B], error) {
	raised := make([]Power[B], len(powers))
	for i, p := range powers {
		exp, err := rational.Mul(p.Exp, e)
		if err != nil {
			return nil, err
		}
		raised[i] = Power[B]{Base: p.Base, Exp: exp}
	}
	return raised, nil
}
