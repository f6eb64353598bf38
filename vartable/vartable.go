// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vartable is an ordered name-to-index table: the mapping between
// the symbolic variable names used by a script or an expression and the
// 0-based column indices a cube.Problem actually works in. It plays the
// role analysis/names plays for the refactoring engine — a small lookup
// facility consulted before any real work starts, rather than a domain
// object in its own right.
package vartable

import "fmt"

// Table maps variable names to stable column indices, assigned in first-seen
// order. The zero value is not usable; construct with New.
type Table struct {
	index map[string]int
	names []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Intern returns the index for name, assigning it the next free index (len)
// the first time it is seen.
func (t *Table) Intern(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.names)
	t.index[name] = i
	t.names = append(t.names, name)
	return i
}

// Lookup returns the index assigned to name, and whether it has been interned.
func (t *Table) Lookup(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Name returns the name interned at index i.
func (t *Table) Name(i int) string {
	if i < 0 || i >= len(t.names) {
		panic(fmt.Sprintf("vartable: index %d out of range [0,%d)", i, len(t.names)))
	}
	return t.names[i]
}

// Len returns the number of distinct names interned so far. This is the
// width a cube.Problem must be constructed with to hold every variable the
// table knows about.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the interned names in index order. The returned slice must
// not be modified.
func (t *Table) Names() []string {
	return t.names
}
