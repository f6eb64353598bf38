// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// maxScratchDepth bounds how many nested scratch frames a Problem will
// accept before treating further pushes as a contract violation. It is a
// generous, fixed compile-time constant, not a tunable.
const maxScratchDepth = 4096

// maxRecursionDepth bounds the Shannon-expansion recursion used by
// IsTautology and ComplementByCofactor. Exceeding it returns
// ErrRecursionLimit rather than growing the call stack without bound.
const maxRecursionDepth = 2000

// Problem is the owning handle for a family of cube lists of a fixed
// variable count V. It carries the per-cube word layout, a LIFO scratch
// cube arena, the global constant cubes (empty and universal), and the
// zero/one counting arrays used by compute_counts. A Problem is not safe
// for concurrent use; independent Problems may be used in parallel.
type Problem struct {
	v     int // variable count
	words int // words per cube, ceil(V / varsPerWord)

	scratch    *List
	frameStack []int
	universal  Cube
	emptyCube  Cube // all-illegal; denotes the empty set
	zeroCounts []uint16
	oneCounts  []uint16
	countedOn  *List // which list zeroCounts/oneCounts currently reflect
}

// NewProblem creates a handle for V variables.
func NewProblem(v int) *Problem {
	if v < 0 {
		violate("NewProblem", "negative variable count %d", v)
	}
	p := &Problem{
		v:          v,
		words:      wordsFor(v),
		zeroCounts: make([]uint16, v),
		oneCounts:  make([]uint16, v),
	}
	p.scratch = p.NewList()
	p.universal = p.NewCube()
	p.emptyCube = make(Cube, p.words) // all-zero words: every field Illegal
	return p
}

// V returns the problem's variable count.
func (p *Problem) V() int { return p.v }

// Words returns the number of uint64 words per cube under this problem.
func (p *Problem) Words() int { return p.words }

// NewCube allocates a fresh all-dontcare cube of this problem's width. It is
// not drawn from the scratch arena; its lifetime is the caller's.
func (p *Problem) NewCube() Cube {
	return newCube(p.words)
}

// Universal returns the all-dontcare cube denoting the entire 2^V-minterm
// space. Callers must not mutate the returned cube; copy it first.
func (p *Problem) Universal() Cube {
	return p.universal
}

// Empty returns the all-illegal cube denoting the empty set. Callers must
// not mutate the returned cube; copy it first.
func (p *Problem) Empty() Cube {
	return p.emptyCube
}

// --- Scratch arena ---------------------------------------------------------

// PushFrame starts a new scratch frame, recording the arena's current
// length so EndFrame can truncate back to it. Frames nest strictly.
func (p *Problem) PushFrame() {
	if len(p.frameStack) >= maxScratchDepth {
		violate("PushFrame", "scratch frame depth exceeds %d", maxScratchDepth)
	}
	p.frameStack = append(p.frameStack, p.scratch.Count())
}

// EndFrame pops the most recent frame and truncates the scratch arena back
// to the length it had when that frame was pushed. Any cube acquired from
// the arena since the matching PushFrame is invalidated.
func (p *Problem) EndFrame() {
	if len(p.frameStack) == 0 {
		violate("EndFrame", "scratch frame underflow: no frame to end")
	}
	n := len(p.frameStack) - 1
	savedLen := p.frameStack[n]
	p.frameStack = p.frameStack[:n]
	if savedLen < 0 || savedLen > p.scratch.Count() {
		violate("EndFrame", "scratch arena length %d below saved frame length %d", p.scratch.Count(), savedLen)
	}
	p.scratch.cubes = p.scratch.cubes[:savedLen]
	p.scratch.flags = p.scratch.flags[:savedLen]
	live := 0
	for _, f := range p.scratch.flags {
		if f == flagLive {
			live++
		}
	}
	p.scratch.liveLen = live
}

// AllocScratch borrows a fresh all-dontcare cube from the scratch arena,
// valid until the innermost open frame ends.
func (p *Problem) AllocScratch() Cube {
	if len(p.frameStack) == 0 {
		violate("AllocScratch", "no open scratch frame")
	}
	idx := p.scratch.AppendEmpty()
	return p.scratch.Get(idx)
}

