// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package rational provides the exact arithmetic used to track unit scale
// factors and exponents.
//
// Ratio is an int64 fraction that never silently wraps: Mul, Pow and Add
// report ErrNumOverflow or ErrDenOverflow instead. Scale extends a Ratio with a
// named floating-point constant for factors that have no exact form, and
// Product folds a sequence of scales, staying exact for as long as possible.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Errors returned by Ratio arithmetic.
var (
	ErrNumOverflow = errors.New("rational: numerator overflow")
	ErrDenOverflow = errors.New("rational: denominator overflow")
	ErrDivByZero   = errors.New("rational: division by zero")
)

// Ratio is an exact fraction num/den in lowest terms with den > 0.
//
// The denominator is stored biased by one so the zero value is 0/1. Two
// valid Ratios can be compared with ==.
type Ratio struct {
	num int64
	den int64
}

// One is the ratio 1/1.
var One = Ratio{num: 1}

// Try returns num/den reduced to lowest terms.
func Try(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ErrDivByZero
	}
	// -MinInt64 is not representable
	if num == math.MinInt64 {
		return Ratio{}, ErrNumOverflow
	}
	if den == math.MinInt64 {
		return Ratio{}, ErrDenOverflow
	}
	if num == 0 {
		return Ratio{}, nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Ratio{num: num / g, den: den/g - 1}, nil
}

// New is like Try but panics on an invalid denominator.
func New(num, den int64) Ratio {
	r, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns n/1.
func Int(n int64) Ratio {
	return New(n, 1)
}

// Num returns the numerator of r.
func (r Ratio) Num() int64 {
	return r.num
}

// Den returns the denominator of r.
func (r Ratio) Den() int64 {
	return r.den + 1
}

// Sign returns -1, 0 or +1.
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

func (r Ratio) IsZero() bool {
	return r.num == 0
}

func (r Ratio) IsOne() bool {
	return r == One
}

// IsInt reports whether r has a denominator of one.
func (r Ratio) IsInt() bool {
	return r.den == 0
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, den: r.den}
}

// Inv returns 1/r. It panics with ErrDivByZero if r is zero.
func (r Ratio) Inv() Ratio {
	if r.num == 0 {
		panic(ErrDivByZero)
	}
	num, den := r.Den(), r.num
	if den < 0 {
		num, den = -num, -den
	}
	return Ratio{num: num, den: den - 1}
}

// Cmp compares r and s and returns -1, 0 or +1.
func (r Ratio) Cmp(s Ratio) int {
	if r == s {
		return 0
	}
	if rs, ss := r.Sign(), s.Sign(); rs != ss {
		if rs < ss {
			return -1
		}
		return 1
	}
	// same sign: compare |r.num|*s.den against |s.num|*r.den in 128 bits
	lh, ll := bits.Mul64(uint64(abs(r.num)), uint64(s.Den()))
	rh, rl := bits.Mul64(uint64(abs(s.num)), uint64(r.Den()))
	c := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		c = -1
	case lh > rh || (lh == rh && ll > rl):
		c = 1
	}
	if r.Sign() < 0 {
		c = -c
	}
	return c
}

// Rat returns r as a new big.Rat.
func (r Ratio) Rat() *big.Rat {
	return big.NewRat(r.num, r.Den())
}

// Float64 returns the float64 nearest to r.
func (r Ratio) Float64() float64 {
	if r.den == 0 {
		return float64(r.num)
	}
	f, _ := r.Rat().Float64()
	return f
}

func (r Ratio) String() string {
	if r.den == 0 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

// Add returns x+y.
func Add(x, y Ratio) (Ratio, error) {
	if x.num == 0 {
		return y, nil
	}
	if y.num == 0 {
		return x, nil
	}
	// a/b + c/d = (a*(d/g) + c*(b/g)) / (b*(d/g)) with g = gcd(b, d)
	b, d := x.Den(), y.Den()
	g := gcd(b, d)
	left, ok := mulSigned(x.num, d/g)
	if !ok {
		return Ratio{}, ErrNumOverflow
	}
	right, ok := mulSigned(y.num, b/g)
	if !ok {
		return Ratio{}, ErrNumOverflow
	}
	num, ok := addSigned(left, right)
	if !ok {
		return Ratio{}, ErrNumOverflow
	}
	den, ok := mulSigned(b, d/g)
	if !ok {
		return Ratio{}, ErrDenOverflow
	}
	return Try(num, den)
}

// Sub returns x-y.
func Sub(x, y Ratio) (Ratio, error) {
	return Add(x, y.Neg())
}

// Mul returns x*y.
func Mul(x, y Ratio) (Ratio, error) {
	if x.num == 0 || y.num == 0 {
		return Ratio{}, nil
	}
	sign := int64(1)
	if (x.num < 0) != (y.num < 0) {
		sign = -1
	}
	xn, xd := abs(x.num), x.Den()
	yn, yd := abs(y.num), y.Den()

	// Both inputs are reduced, so dividing out the cross GCDs leaves a
	// product that is already in lowest terms.
	if g := gcd(xn, yd); g != 1 {
		xn, yd = xn/g, yd/g
	}
	if g := gcd(yn, xd); g != 1 {
		yn, xd = yn/g, xd/g
	}

	num, ok := mulUnsigned(xn, yn)
	if !ok {
		return Ratio{}, ErrNumOverflow
	}
	den, ok := mulUnsigned(xd, yd)
	if !ok {
		return Ratio{}, ErrDenOverflow
	}
	return Ratio{num: sign * num, den: den - 1}, nil
}

// Div returns x/y.
func Div(x, y Ratio) (Ratio, error) {
	if y.num == 0 {
		return Ratio{}, ErrDivByZero
	}
	return Mul(x, y.Inv())
}

// Pow returns x raised to the integer power e. A negative exponent inverts x
// first and then raises it to |e|.
func Pow(x Ratio, e int64) (Ratio, error) {
	if e == 0 {
		return One, nil
	}
	if e < 0 {
		if x.num == 0 {
			return Ratio{}, ErrDivByZero
		}
		if e == math.MinInt64 {
			return Ratio{}, ErrNumOverflow
		}
		x, e = x.Inv(), -e
	}

	result, base := One, x
	var err error
	for {
		if e&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return Ratio{}, err
			}
		}
		e >>= 1
		if e == 0 {
			return result, nil
		}
		if base, err = Mul(base, base); err != nil {
			return Ratio{}, err
		}
	}
}

// MustAdd is like Add but panics on overflow.
func MustAdd(x, y Ratio) Ratio {
	r, err := Add(x, y)
	if err != nil {
		panic(err)
	}
	return r
}

// MustMul is like Mul but panics on overflow.
func MustMul(x, y Ratio) Ratio {
	r, err := Mul(x, y)
	if err != nil {
		panic(err)
	}
	return r
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// mulUnsigned multiplies two non-negative values, reporting whether the
// product fits in an int64.
func mulUnsigned(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

func mulSigned(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	p, ok := mulUnsigned(abs(a), abs(b))
	if !ok {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		p = -p
	}
	return p, true
}

func addSigned(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}
