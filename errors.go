// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "github.com/zeebo/errs"

var (
	// ErrNameCollision is returned when a base unit name is already taken.
	ErrNameCollision = errs.Class("unit name collision")
	// ErrInvalidName is returned for an empty unit name.
	ErrInvalidName = errs.Class("invalid unit name")
	// ErrNotConvertible is returned when two units have different dimensions.
	ErrNotConvertible = errs.Class("units are not convertible")
	// ErrAbsoluteComposition marks an operation that absolute units do not
	// support, such as compounding them with other units.
	ErrAbsoluteComposition = errs.Class("invalid absolute unit composition")
	// ErrIncompatible is returned when two units cannot be added or subtracted.
	ErrIncompatible = errs.Class("incompatible units")
	// ErrInvalidScale marks a non-positive scale factor.
	ErrInvalidScale = errs.Class("invalid scale")
	// ErrOverflow marks a unit exponent that does not fit an int64 ratio.
	ErrOverflow = errs.Class("exponent overflow")
)
