// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package rational

import (
	"cmp"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Scale is a multiplicative factor (or an offset, for absolute units). It is
// either an exact Ratio or a computed floating-point constant such as π/180.
//
// A ratio too large for int64 is kept as a computed scale that still carries
// its exact value, named by that value. Products and sums involving computed
// scales are built from their parts in scale order, so the result is the same
// whatever order the operands were combined in.
type Scale struct {
	exact    Ratio
	computed *computed
}

type computed struct {
	name  string
	value float64

	// exact value of an overflowed ratio
	big *big.Rat

	// op is '*' or '+' for a product or sum of parts, 0 otherwise
	op    byte
	parts []Scale
}

// Exact returns a scale holding r.
func Exact(r Ratio) Scale {
	return Scale{exact: r}
}

// Frac returns the exact scale num/den.
func Frac(num, den int64) Scale {
	return Exact(New(num, den))
}

// Computed returns a named floating-point scale. Two computed scales are the
// same only if both name and value match.
func Computed(name string, value float64) Scale {
	return Scale{computed: &computed{name: name, value: value}}
}

// Big returns the scale with the exact value r: an exact scale if r fits an
// int64 Ratio, otherwise a computed scale named by r.
func Big(r *big.Rat) Scale {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		if q, err := Try(r.Num().Int64(), r.Denom().Int64()); err == nil {
			return Exact(q)
		}
	}
	v := new(big.Rat).Set(r)
	f, _ := v.Float64()
	return Scale{computed: &computed{name: v.RatString(), value: f, big: v}}
}

// Identity is the exact scale 1.
var Identity = Exact(One)

func (s Scale) IsExact() bool {
	return s.computed == nil
}

// Ratio returns the exact value of s, if it fits an int64 Ratio.
func (s Scale) Ratio() (Ratio, bool) {
	return s.exact, s.computed == nil
}

// BigRat returns the exact value of s, if it has one, including ratios too
// large for int64.
func (s Scale) BigRat() (*big.Rat, bool) {
	switch {
	case s.computed == nil:
		return s.exact.Rat(), true
	case s.computed.big != nil:
		return new(big.Rat).Set(s.computed.big), true
	}
	return nil, false
}

// Factors returns the parts of a product of scales, or s itself.
func (s Scale) Factors() []Scale {
	return s.partsOf('*')
}

func (s Scale) partsOf(op byte) []Scale {
	if s.computed != nil && s.computed.op == op {
		return s.computed.parts
	}
	return []Scale{s}
}

// IsOne reports whether s is exactly 1.
func (s Scale) IsOne() bool {
	return s.computed == nil && s.exact.IsOne()
}

// IsZero reports whether s is exactly 0.
func (s Scale) IsZero() bool {
	return s.computed == nil && s.exact.IsZero()
}

func (s Scale) Sign() int {
	switch {
	case s.computed == nil:
		return s.exact.Sign()
	case s.computed.big != nil:
		return s.computed.big.Sign()
	case s.computed.value < 0:
		return -1
	case s.computed.value > 0:
		return 1
	}
	return 0
}

// Float64 returns the value of s as a float64.
func (s Scale) Float64() float64 {
	if s.computed == nil {
		return s.exact.Float64()
	}
	return s.computed.value
}

// bigFloat returns s at PRECISION bits.
func (s Scale) bigFloat() *big.Float {
	if r, ok := s.BigRat(); ok {
		return newFloat().SetRat(r)
	}
	return newFloat().SetFloat64(s.computed.value)
}

// Mul returns s*t. Exact operands stay exact unless the product overflows.
func (s Scale) Mul(t Scale) Scale {
	if s.IsOne() {
		return t
	}
	if t.IsOne() {
		return s
	}
	if s.computed == nil && t.computed == nil {
		if r, err := Mul(s.exact, t.exact); err == nil {
			return Exact(r)
		}
	}
	return combine('*', s, t)
}

// Inv returns 1/s.
func (s Scale) Inv() Scale {
	if s.computed == nil {
		return Exact(s.exact.Inv())
	}
	if r, ok := s.BigRat(); ok {
		return Big(r.Inv(r))
	}
	return Computed("1/("+s.computed.name+")", 1/s.computed.value)
}

// Div returns s/t.
func (s Scale) Div(t Scale) Scale {
	return s.Mul(t.Inv())
}

// Add returns s+t. Used for absolute unit offsets.
func (s Scale) Add(t Scale) Scale {
	if s.IsZero() {
		return t
	}
	if t.IsZero() {
		return s
	}
	if s.computed == nil && t.computed == nil {
		if r, err := Add(s.exact, t.exact); err == nil {
			return Exact(r)
		}
	}
	return combine('+', s, t)
}

// combine returns the product or sum of s and t. Exact parts are folded into
// one trailing part; the others are sorted by Cmp.
func combine(op byte, s, t Scale) Scale {
	acc := big.NewRat(0, 1)
	if op == '*' {
		acc.SetInt64(1)
	}

	var parts []Scale
	for _, part := range append(slices.Clone(s.partsOf(op)), t.partsOf(op)...) {
		r, ok := part.BigRat()
		switch {
		case !ok:
			parts = append(parts, part)
		case op == '*':
			acc.Mul(acc, r)
		default:
			acc.Add(acc, r)
		}
	}

	rest := Big(acc)
	if len(parts) == 0 {
		return rest
	}
	slices.SortFunc(parts, Scale.Cmp)
	if !(op == '*' && rest.IsOne() || op == '+' && rest.IsZero()) {
		parts = append(parts, rest)
	}
	if len(parts) == 1 {
		return parts[0]
	}

	value := parts[0].bigFloat()
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = part.String()
		if part.computed != nil && part.computed.op != 0 {
			names[i] = "(" + names[i] + ")"
		}
		switch {
		case i == 0:
		case op == '*':
			value.Mul(value, part.bigFloat())
		default:
			value.Add(value, part.bigFloat())
		}
	}
	f, _ := value.Float64()

	return Scale{computed: &computed{name: strings.Join(names, string(op)), value: f, op: op, parts: parts}}
}

// Pow returns s raised to the rational power e.
func (s Scale) Pow(e Ratio) Scale {
	if e.IsOne() {
		return s
	}
	if e.IsZero() {
		return Identity
	}
	if r, ok := s.BigRat(); ok && e.IsInt() && smallExp(e.Num()) {
		if s.computed == nil {
			if p, err := Pow(s.exact, e.Num()); err == nil {
				return Exact(p)
			}
		}
		return Big(bigPow(r, e.Num()))
	}
	if s.computed == nil && e.IsInt() {
		if p, err := Pow(s.exact, e.Num()); err == nil {
			return Exact(p)
		}
	}
	return Computed("("+s.String()+")^"+e.String(), math.Pow(s.Float64(), e.Float64()))
}

// bigPow returns r^e exactly.
func bigPow(r *big.Rat, e int64) *big.Rat {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	if e < 0 {
		num, den, e = den, num, -e
	}
	exp := big.NewInt(e)
	num.Exp(num, exp, nil)
	den.Exp(den, exp, nil)
	return new(big.Rat).SetFrac(num, den)
}

// Cmp is the total order over scales: exact scales by value, then every
// computed scale, ordered by value and then name.
func (s Scale) Cmp(t Scale) int {
	switch {
	case s.computed == nil && t.computed == nil:
		return s.exact.Cmp(t.exact)
	case s.computed == nil:
		return -1
	case t.computed == nil:
		return 1
	}
	if c := cmp.Compare(s.computed.value, t.computed.value); c != 0 {
		return c
	}
	return cmp.Compare(s.computed.name, t.computed.name)
}

// Key identifies s for interning. Equal keys mean equal scales.
func (s Scale) Key() string {
	if s.computed == nil {
		return "r" + s.exact.String()
	}
	return "f" + strconv.FormatUint(math.Float64bits(s.computed.value), 16) + ":" + s.computed.name
}

func (s Scale) String() string {
	if s.computed == nil {
		return s.exact.String()
	}
	return s.computed.name
}
