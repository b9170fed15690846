// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"strings"

	"units/rational"
)

const DOT = "·"

// String renders u as, e.g., "meter·kilogram/second^2", "(1/100·meter)" or
// "absolute(kelvin, -27315/100)". The dimensionless unit renders as "1".
func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}

	switch u.kind {
	case KindBase:
		return u.name
	case KindScaled:
		base := u.base.String()
		if u.base.kind == KindCompound && len(u.base.terms) > 1 {
			base = "(" + base + ")"
		}
		return "(" + u.scale.String() + DOT + base + ")"
	case KindAbsolute:
		if u.scale.IsZero() {
			return fmt.Sprintf("absolute(%v)", u.base)
		}
		return fmt.Sprintf("absolute(%v, %v)", u.base, u.scale)
	}

	if len(u.terms) == 0 {
		return "1"
	}

	var numerator, denominator []string
	for _, t := range u.terms {
		if t.Exp.Sign() > 0 {
			numerator = append(numerator, termString(t.Base, t.Exp))
		} else {
			denominator = append(denominator, termString(t.Base, t.Exp.Neg()))
		}
	}

	result := strings.Join(numerator, DOT)
	if len(numerator) == 0 {
		result = "1"
	}
	if len(denominator) > 0 {
		result += "/" + strings.Join(denominator, DOT)
	}
	return result
}

// stringifies with the absolute value of the exponent
func termString(u *Unit, exp rational.Ratio) string {
	switch {
	case exp.IsOne():
		return u.String()
	case exp.IsInt():
		return fmt.Sprintf("%v^%v", u, exp)
	}
	return fmt.Sprintf("%v^(%v)", u, exp)
}
