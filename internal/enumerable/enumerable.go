// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable holds the generic slice helpers used to fold unit terms
// and to shape unit tables for display.
package enumerable

import "slices"

// Filter returns the elements for which keep is true, in order. The result
// never aliases slice.
func Filter[T any](slice []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(slice))
	for _, elem := range slice {
		if keep(elem) {
			kept = append(kept, elem)
		}
	}
	return slices.Clip(kept)
}

// Map returns f applied to each element. A nil slice maps to nil.
func Map[T, R any](slice []T, f func(T) R) []R {
	if slice == nil {
		return nil
	}
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = f(elem)
	}
	return mapped
}

// Fold combines the elements left to right, starting from initial.
func Fold[T, R any](slice []T, initial R, combine func(R, T) R) R {
	acc := initial
	for _, elem := range slice {
		acc = combine(acc, elem)
	}
	return acc
}

// GroupBy partitions the elements by key, keeping first-seen key order.
func GroupBy[T any, K comparable](slice []T, key func(T) K) ([]K, map[K][]T) {
	var keys []K
	groups := make(map[K][]T)
	for _, elem := range slice {
		k := key(elem)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], elem)
	}
	return keys, groups
}
