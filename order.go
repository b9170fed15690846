// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"cmp"
	"strings"
)

// Compare is the total order over canonical units that keeps compound terms
// sorted. Shapes order base < scaled < compound < absolute. Base units order
// by name, scaled and absolute units by wrapped unit and then scale, and
// compound units by their terms, shorter prefix first.
func Compare(a, b *Unit) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}

	switch a.kind {
	case KindBase:
		return strings.Compare(a.name, b.name)
	case KindScaled, KindAbsolute:
		if c := Compare(a.base, b.base); c != 0 {
			return c
		}
		return a.scale.Cmp(b.scale)
	}

	for i := 0; i < len(a.terms) && i < len(b.terms); i++ {
		if c := Compare(a.terms[i].Base, b.terms[i].Base); c != 0 {
			return c
		}
		if c := a.terms[i].Exp.Cmp(b.terms[i].Exp); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.terms), len(b.terms))
}
