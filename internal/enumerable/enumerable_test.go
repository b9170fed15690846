// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	if !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("Filter = %v, want [1 3 5]", got)
	}
	if got := Filter([]int{2}, func(n int) bool { return false }); got == nil || len(got) != 0 {
		t.Errorf("Filter with no matches = %#v, want empty slice", got)
	}

	in := []int{1, 2, 3}
	kept := Filter(in, func(n int) bool { return n != 2 })
	kept = append(kept, 9)
	if !reflect.DeepEqual(in, []int{1, 2, 3}) {
		t.Errorf("appending to a Filter result changed its input: %v", in)
	}
}

func TestMap(t *testing.T) {
	got := Map([]string{"m", "kg", "s"}, func(s string) int { return len(s) })
	if !reflect.DeepEqual(got, []int{1, 2, 1}) {
		t.Errorf("Map = %v, want [1 2 1]", got)
	}
	if got := Map(nil, func(s string) int { return len(s) }); got != nil {
		t.Errorf("Map(nil) = %#v, want nil", got)
	}
}

func TestFold(t *testing.T) {
	got := Fold([]string{"a", "b", "c"}, "", func(acc, s string) string { return acc + s })
	if got != "abc" {
		t.Errorf("Fold = %q, want %q", got, "abc")
	}
	if got := Fold(nil, 7, func(acc, n int) int { return acc * n }); got != 7 {
		t.Errorf("Fold over empty = %d, want 7", got)
	}
}

func TestGroupBy(t *testing.T) {
	keys, groups := GroupBy([]string{"meter", "mile", "second", "minute", "mole"}, func(s string) byte { return s[0] })
	if !reflect.DeepEqual(keys, []byte{'m', 's'}) {
		t.Errorf("GroupBy keys = %v, want [m s]", keys)
	}
	if !reflect.DeepEqual(groups['m'], []string{"meter", "mile", "minute", "mole"}) {
		t.Errorf("GroupBy['m'] = %v", groups['m'])
	}
}
