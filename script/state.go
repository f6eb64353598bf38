// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script interprets the JSON command scripts spec.md's external
// interfaces describe: a flat array of objects, each naming one of a small
// opcode set, run in two passes against nine addressable cube-list "slots"
// sharing a single cube.Problem. Dispatch mirrors the teacher's
// engine/protocol package (a Command interface looked up in a name-keyed
// map, run against a shared *State), and malformed scripts are rejected by
// an embedded JSON Schema before any slot is touched.
package script

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/diag"
	"github.com/godoctor/boolcube/vartable"
)

const numSlots = 9

// State is the interpreter's working memory: the sized problem handle, the
// nine cube-list slots a script addresses by index, the variable table used
// to resolve expr identifiers to columns, and the running diagnostics log.
type State struct {
	Problem  *cube.Problem
	VarTable *vartable.Table
	Slots    [numSlots]*cube.List
	Log      diag.Log

	// written tracks which slots a script has actually stored a list into
	// (via bcl2slot, exchange0, or copy0), the way extras/cfg/df.go tracks
	// live block state with one bitset.BitSet bit per entity. show on an
	// untouched slot still works (it starts life as an empty list) but is
	// flagged stale in the reply so a malformed script is easier to debug.
	written bitset.BitSet

	// Empty, Superset, and Subset are the flags intersection0, subtract0,
	// and equal0 set, per spec.md's opcode table.
	Empty    bool
	Superset bool
	Subset   bool
}

func newState(p *cube.Problem, vt *vartable.Table) *State {
	s := &State{Problem: p, VarTable: vt}
	for i := range s.Slots {
		s.Slots[i] = p.NewList()
	}
	return s
}

// markWritten records that slot has been given real content by the script.
func (s *State) markWritten(slot int) {
	s.written.Set(uint(slot))
}

// isWritten reports whether slot has ever been written.
func (s *State) isWritten(slot int) bool {
	return s.written.Test(uint(slot))
}

// Reply is the JSON-serializable result of one command, keyed the way
// engine/protocol.Reply wraps a map[string]interface{} for printing.
type Reply map[string]interface{}

// Command is one opcode's behavior, run against the shared State with the
// raw (already schema-validated) command object.
type Command interface {
	Run(s *State, raw map[string]interface{}) (Reply, error)
}
