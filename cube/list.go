// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "fmt"

// tombstone flag values. A nonzero flag marks a cube dead; Purge removes
// dead cubes from a list and clears the flag bytes of what remains.
const (
	flagLive = 0
	flagDead = 1
)

// List is an append-only vector of cubes plus a parallel tombstone flag per
// cube. Semantically a List denotes the union (OR) of its live cubes. List
// order carries no semantic weight but is used as a deterministic tie-break
// by several algorithms (SCC, expand).
type List struct {
	p       *Problem
	cubes   []Cube
	flags   []byte
	liveLen int // cached count of live (non-tombstoned) cubes
}

// NewList returns an empty list owned by p.
func (p *Problem) NewList() *List {
	return &List{p: p}
}

// Clone returns a deep copy of l: same cubes (by value), same flags.
func (l *List) Clone() *List {
	out := &List{p: l.p, liveLen: l.liveLen}
	out.cubes = make([]Cube, len(l.cubes))
	for i, c := range l.cubes {
		out.cubes[i] = cloneCube(c)
	}
	out.flags = append([]byte(nil), l.flags...)
	return out
}

// CopyInto overwrites dst's contents with a deep copy of l's.
func (l *List) CopyInto(dst *List) {
	dst.p = l.p
	dst.cubes = dst.cubes[:0]
	dst.flags = dst.flags[:0]
	for i, c := range l.cubes {
		dst.cubes = append(dst.cubes, cloneCube(c))
		dst.flags = append(dst.flags, l.flags[i])
	}
	dst.liveLen = l.liveLen
}

// Clear empties l in place without releasing its backing arrays.
func (l *List) Clear() {
	l.cubes = l.cubes[:0]
	l.flags = l.flags[:0]
	l.liveLen = 0
}

// Count returns the total number of cube slots, live or tombstoned.
func (l *List) Count() int { return len(l.cubes) }

// LiveCount returns the number of non-tombstoned cubes.
func (l *List) LiveCount() int { return l.liveLen }

// Get returns the cube at index i (whether live or tombstoned; callers
// iterating a list must consult IsLive themselves).
func (l *List) Get(i int) Cube { return l.cubes[i] }

// IsLive reports whether the cube at index i is live.
func (l *List) IsLive(i int) bool { return l.flags[i] == flagLive }

// Kill tombstones the cube at index i.
func (l *List) Kill(i int) {
	if l.flags[i] == flagLive {
		l.flags[i] = flagDead
		l.liveLen--
	}
}

// AppendEmpty appends a new all-dontcare cube and returns its index.
func (l *List) AppendEmpty() int {
	return l.appendRaw(l.p.NewCube())
}

// AppendCopy appends a copy of c and returns its new index.
func (l *List) AppendCopy(c Cube) int {
	return l.appendRaw(cloneCube(c))
}

func (l *List) appendRaw(c Cube) int {
	l.cubes = append(l.cubes, c)
	l.flags = append(l.flags, flagLive)
	l.liveLen++
	return len(l.cubes) - 1
}

// AppendAllFrom appends all live cubes of other to l without simplification
// (a plain union of cube bags).
func (l *List) AppendAllFrom(other *List) {
	for i, c := range other.cubes {
		if other.flags[i] == flagLive {
			l.AppendCopy(c)
		}
	}
}

// Purge compacts l in place, dropping tombstoned cubes and preserving the
// relative order of the survivors. O(Count()).
func (l *List) Purge() {
	if l.liveLen == len(l.cubes) {
		return
	}
	out := l.cubes[:0]
	flags := l.flags[:0]
	for i, c := range l.cubes {
		if l.flags[i] == flagLive {
			out = append(out, c)
			flags = append(flags, flagLive)
		}
	}
	l.cubes = out
	l.flags = flags
	l.liveLen = len(out)
}

// Show renders l in the row-dump format: one "NNNN FF string" line per
// cube slot (live or tombstoned), NNNN zero-padded to four digits, FF the
// flag byte in hex, and string the cube's textual encoding.
func (l *List) Show() string {
	s := ""
	for i, c := range l.cubes {
		s += fmt.Sprintf("%04d %02x %s\n", i, l.flags[i], l.p.EncodeCube(c))
	}
	return s
}
