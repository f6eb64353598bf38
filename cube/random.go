// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "math/rand"

// RandomTautology builds a list of exactly size cubes (a single cube when
// V is 0) that is provably tautological, for regression testing. It starts from the single
// all-dontcare cube and repeatedly picks a random (cube, variable)
// position; if that variable is still DontCare in the chosen cube, the
// cube is split into two (the chosen variable fixed to Zero in one copy,
// One in the other), which preserves the union's semantics while growing
// the list by one. Positions that are already fixed are simply skipped and
// retried. rng is caller-supplied so the sequence is reproducible from an
// external seed.
func (p *Problem) RandomTautology(rng *rand.Rand, size int) *List {
	if size < 1 {
		violate("RandomTautology", "size must be >= 1, got %d", size)
	}
	l := p.NewList()
	l.AppendCopy(p.Universal())

	for l.Count() < size {
		pos := rng.Intn(l.Count())
		if !l.IsLive(pos) {
			continue
		}
		if p.v == 0 {
			break
		}
		v := rng.Intn(p.v)
		c := l.Get(pos)
		if p.Get(c, v) != DontCare {
			continue
		}
		p.Set(c, v, Zero)
		idx := l.AppendCopy(c)
		p.Set(l.Get(idx), v, One)
	}
	return l
}

// MutateDontCareToOne applies k "dontcare-to-one" mutations to l: each
// mutation picks a random live cube and a random variable still at
// DontCare and fixes it to One. This breaks tautology (the mutated cube no
// longer covers the minterms where that variable is zero) and is used to
// manufacture random non-tautological lists from RandomTautology's output.
// If a chosen cube has no remaining DontCare variable to mutate, that
// attempt is retried against a freshly chosen cube; callers should not pass
// k larger than is plausible to satisfy (e.g. k > V) or this may spin.
func (p *Problem) MutateDontCareToOne(rng *rand.Rand, l *List, k int) {
	for done := 0; done < k; {
		if l.LiveCount() == 0 {
			return
		}
		pos := rng.Intn(l.Count())
		if !l.IsLive(pos) {
			continue
		}
		c := l.Get(pos)
		candidates := make([]int, 0, p.v)
		for v := 0; v < p.v; v++ {
			if p.Get(c, v) == DontCare {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		v := candidates[rng.Intn(len(candidates))]
		p.Set(c, v, One)
		done++
	}
}
