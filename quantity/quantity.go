// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package quantity pairs a numeric value with the unit it is measured in.
//
// Arithmetic computes the unit of the result with the algebra of package
// units. Addition, subtraction and comparison are checked at run time and
// return an error for units that do not match; they never convert
// implicitly.
package quantity

import (
	"cmp"
	"fmt"

	"units"
)

// Number is the set of value types a Quantity can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Quantity is a value measured in a unit. It is immutable; every operation
// returns a new Quantity. The zero value is a dimensionless 0.
type Quantity[T Number] struct {
	unit  *units.Unit
	value T
}

// New returns value measured in u.
func New[T Number](u *units.Unit, value T) Quantity[T] {
	return Quantity[T]{unit: u, value: value}
}

// Scalar returns a dimensionless quantity.
func Scalar[T Number](value T) Quantity[T] {
	return Quantity[T]{unit: units.Dimensionless(), value: value}
}

func (q Quantity[T]) Value() T {
	return q.value
}

func (q Quantity[T]) Unit() *units.Unit {
	if q.unit == nil {
		return units.Dimensionless()
	}
	return q.unit
}

// Float returns the raw value of a dimensionless quantity, converting out of
// any scale such as percent. A quantity with a dimension is an error.
func (q Quantity[T]) Float() (T, error) {
	if q.Unit() == units.Dimensionless() {
		return q.value, nil
	}
	r, err := q.In(units.Dimensionless())
	if err != nil {
		return 0, err
	}
	return r.value, nil
}

// Mul returns a*b. It panics if either unit is absolute.
func Mul[T Number](a, b Quantity[T]) Quantity[T] {
	return Quantity[T]{unit: units.Mul(a.Unit(), b.Unit()), value: a.value * b.value}
}

// Div returns a/b. It panics if either unit is absolute.
func Div[T Number](a, b Quantity[T]) Quantity[T] {
	return Quantity[T]{unit: units.Div(a.Unit(), b.Unit()), value: a.value / b.value}
}

// MulUnit returns the same value measured in q's unit times u.
func (q Quantity[T]) MulUnit(u *units.Unit) Quantity[T] {
	return Quantity[T]{unit: units.Mul(q.Unit(), u), value: q.value}
}

// DivUnit returns the same value measured in q's unit divided by u.
func (q Quantity[T]) DivUnit(u *units.Unit) Quantity[T] {
	return Quantity[T]{unit: units.Div(q.Unit(), u), value: q.value}
}

// Times scales the value by x, keeping the unit.
func (q Quantity[T]) Times(x T) Quantity[T] {
	return Quantity[T]{unit: q.unit, value: q.value * x}
}

func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{unit: q.unit, value: -q.value}
}

// Add returns a+b, which is defined for two quantities in the same linear
// unit and for an absolute unit plus its difference unit.
func Add[T Number](a, b Quantity[T]) (Quantity[T], error) {
	u, err := units.AddUnits(a.Unit(), b.Unit())
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: u, value: a.value + b.value}, nil
}

// Sub returns a-b. Two readings of the same absolute unit subtract to a
// quantity in its difference unit.
func Sub[T Number](a, b Quantity[T]) (Quantity[T], error) {
	u, err := units.SubUnits(a.Unit(), b.Unit())
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: u, value: a.value - b.value}, nil
}

// Compare compares the values of two quantities in the same unit. Quantities
// in different units, even convertible ones, are an error; convert one with
// In first.
func Compare[T Number](a, b Quantity[T]) (int, error) {
	if a.Unit() != b.Unit() {
		return 0, units.ErrIncompatible.New("cannot compare %v and %v", a.Unit(), b.Unit())
	}
	return cmp.Compare(a.value, b.value), nil
}

func Equal[T Number](a, b Quantity[T]) (bool, error) {
	c, err := Compare(a, b)
	return c == 0 && err == nil, err
}

func Less[T Number](a, b Quantity[T]) (bool, error) {
	c, err := Compare(a, b)
	return c < 0 && err == nil, err
}

// In converts q to the unit u. Integer values are rounded to the nearest
// integer, and a negative result in an unsigned type is clamped to 0.
func (q Quantity[T]) In(u *units.Unit) (Quantity[T], error) {
	v, err := units.Convert(q.Unit(), u, float64(q.value))
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: u, value: fromFloat[T](v)}, nil
}

func fromFloat[T Number](v float64) T {
	var zero T
	half := 0.5
	switch {
	case T(half) != 0:
		return T(v)
	case zero-1 > zero && v < 0:
		// unsigned type
		return 0
	case v < 0:
		return T(v - half)
	}
	return T(v + half)
}

func (q Quantity[T]) String() string {
	if q.Unit() == units.Dimensionless() {
		return fmt.Sprintf("%v", q.value)
	}
	return fmt.Sprintf("%v %v", q.value, q.Unit())
}
