// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// registry interns every unit node by structural key, and base units by name.
var registry = struct {
	sync.Mutex
	nodes map[string]*Unit
	names map[string]*Unit
}{
	nodes: make(map[string]*Unit),
	names: make(map[string]*Unit),
}

// intern returns the canonical node for u, storing u if it is new.
func intern(u *Unit) *Unit {
	u.key = keyOf(u)

	registry.Lock()
	defer registry.Unlock()

	if existing, ok := registry.nodes[u.key]; ok {
		return existing
	}
	registry.nodes[u.key] = u
	return u
}

func keyOf(u *Unit) string {
	var sb strings.Builder
	switch u.kind {
	case KindBase:
		// length prefixed so a name cannot mimic structure
		sb.WriteString("b")
		sb.WriteString(strconv.Itoa(len(u.name)))
		sb.WriteString(":")
		sb.WriteString(u.name)
	case KindScaled, KindAbsolute:
		if u.kind == KindScaled {
			sb.WriteString("s(")
		} else {
			sb.WriteString("a(")
		}
		sb.WriteString(u.base.key)
		sb.WriteString(",")
		sb.WriteString(u.scale.Key())
		sb.WriteString(")")
	case KindCompound:
		sb.WriteString("c[")
		for i, t := range u.terms {
			if i > 0 {
				sb.WriteString(";")
			}
			sb.WriteString(t.Base.key)
			sb.WriteString("^")
			sb.WriteString(t.Exp.String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}

// Define registers a new base unit. A nil definition makes the unit a new
// fundamental dimension; otherwise the unit has the dimension and scale of
// def but stays a distinct, primitive unit that is never expanded when
// combined with others.
func Define(name string, def *Unit) (*Unit, error) {
	if name == "" {
		return nil, ErrInvalidName.New("unit name must not be empty")
	}
	if def != nil && def.kind == KindAbsolute {
		return nil, ErrAbsoluteComposition.New("cannot define %q in terms of absolute unit %v", name, def)
	}

	u := &Unit{kind: KindBase, name: name, def: def}
	u.key = keyOf(u)

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.names[name]; ok {
		return nil, ErrNameCollision.New("%q is already defined", name)
	}
	registry.names[name] = u
	registry.nodes[u.key] = u

	slog.Debug("defined unit", "name", name, "definition", def)
	return u, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level unit tables.
func MustDefine(name string, def *Unit) *Unit {
	u, err := Define(name, def)
	if err != nil {
		panic(err)
	}
	return u
}

// Lookup returns the base unit registered under name.
func Lookup(name string) (*Unit, bool) {
	registry.Lock()
	defer registry.Unlock()

	u, ok := registry.names[name]
	return u, ok
}

// Names returns the names of all registered base units in sorted order.
func Names() []string {
	registry.Lock()
	names := make([]string, 0, len(registry.names))
	for name := range registry.names {
		names = append(names, name)
	}
	registry.Unlock()

	slices.Sort(names)
	return names
}

// Entry binds a unit to the symbol and description used to look it up in a
// unit table.
type Entry struct {
	Symbol      string
	Description string
	Unit        *Unit
}
