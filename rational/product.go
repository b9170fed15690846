// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package rational

import (
	"math"
	"math/big"
)

const PRECISION = 113 // match IEEE 754 quadruple-precision binary floating-point format (binary128)

func newFloat() *big.Float {
	return new(big.Float).SetPrec(PRECISION)
}

func ratFloat(r Ratio) *big.Float {
	return newFloat().SetRat(r.Rat())
}

// maxExactExp bounds the exponents raised in big.Rat arithmetic; larger
// powers go through PRECISION-bit floating point.
const maxExactExp = 64

func smallExp(e int64) bool {
	return -maxExactExp <= e && e <= maxExactExp
}

// Product accumulates a running product of scales. It multiplies exactly
// until a factor overflows int64 or has no exact form; from then on it
// continues in PRECISION-bit floating point and rounds to float64 once, in
// Float64.
//
// The zero value is not ready for use; call NewProduct.
type Product struct {
	exact Ratio
	f     *big.Float
}

// NewProduct returns a product equal to 1.
func NewProduct() *Product {
	return new(Product).init()
}

func (p *Product) init() *Product {
	p.exact = One
	p.f = nil
	return p
}

// Mul multiplies p by s.
func (p *Product) Mul(s Scale) *Product {
	return p.MulPow(s, One)
}

// MulPow multiplies p by s^e.
func (p *Product) MulPow(s Scale, e Ratio) *Product {
	if r, ok := s.Ratio(); ok && e.IsInt() {
		pw, err := Pow(r, e.Num())
		if err == nil {
			return p.mulRatio(pw)
		}
	}
	if r, ok := s.BigRat(); ok && e.IsInt() {
		if smallExp(e.Num()) {
			return p.mulFloat(newFloat().SetRat(bigPow(r, e.Num())))
		}
		return p.mulFloat(floatPow(newFloat().SetRat(r), e.Num()))
	}
	if e.IsInt() {
		return p.mulFloat(floatPow(newFloat().SetFloat64(s.Float64()), e.Num()))
	}
	return p.mulFloat(newFloat().SetFloat64(math.Pow(s.Float64(), e.Float64())))
}

// floatPow returns x^e by repeated squaring at PRECISION bits.
func floatPow(x *big.Float, e int64) *big.Float {
	result := newFloat().SetInt64(1)
	if e < 0 {
		x, e = newFloat().Quo(result, x), -e
	}
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, x)
		}
		x = newFloat().Mul(x, x)
	}
	return result
}

func (p *Product) mulRatio(r Ratio) *Product {
	if p.f == nil {
		m, err := Mul(p.exact, r)
		if err == nil {
			p.exact = m
			return p
		}
		p.f = ratFloat(p.exact)
	}
	p.f.Mul(p.f, ratFloat(r))
	return p
}

func (p *Product) mulFloat(f *big.Float) *Product {
	if p.f == nil {
		p.f = ratFloat(p.exact)
	}
	p.f.Mul(p.f, f)
	return p
}

// Exact returns the exact product and true if no factor forced floating point.
func (p *Product) Exact() (Ratio, bool) {
	return p.exact, p.f == nil
}

// Float64 returns the product rounded to the nearest float64.
func (p *Product) Float64() float64 {
	if p.f == nil {
		return p.exact.Float64()
	}
	v, _ := p.f.Float64()
	return v
}
