// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// SimpleExpand performs a nested pairwise scan of l, merging any
// distance-one pair (Delta == 1) whose single differing variable can be
// widened to DontCare without exceeding the other cube: it tentatively
// widens one side, checks the other side is now a subset, and — if so —
// commits the widening and kills any other live cube now subsumed by the
// grown cube. If the first side's widening doesn't work it tries the
// symmetric widening of the other side; if neither works, both cubes are
// left untouched. The transformation only ever grows cubes; which side of a
// symmetric pair widens first depends on cube order. Terminates with Purge.
func (p *Problem) SimpleExpand(l *List) {
	n := len(l.cubes)
	for i := 0; i < n; i++ {
		if l.flags[i] != flagLive {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || l.flags[j] != flagLive {
				continue
			}
			ci, cj := l.cubes[i], l.cubes[j]
			if p.Delta(ci, cj) != 1 {
				continue
			}
			v := p.DeltaVar(ci, cj)

			orig := p.Get(ci, v)
			p.Set(ci, v, DontCare)
			if p.IsSubsetCube(ci, cj) {
				p.killSubsumed(l, i, ci)
				continue
			}
			p.Set(ci, v, orig)

			origJ := p.Get(cj, v)
			p.Set(cj, v, DontCare)
			if p.IsSubsetCube(cj, ci) {
				p.killSubsumed(l, j, cj)
				continue
			}
			p.Set(cj, v, origJ)
		}
	}
	l.Purge()
}

// killSubsumed kills every live cube other than keep that is now a subset
// of the just-widened cube c.
func (p *Problem) killSubsumed(l *List, keep int, c Cube) {
	for k, lc := range l.cubes {
		if k != keep && l.flags[k] == flagLive && p.IsSubsetCube(c, lc) {
			l.Kill(k)
		}
	}
}

// ExpandWithOffSet grows every live cube of l to the largest implicant that
// does not intersect off, assumed to be a correct off-set of l's current
// function: for each non-dontcare variable of each cube, that variable is
// tentatively widened to DontCare, and reverted if the widened cube now
// intersects any live cube of off. No cube is added or removed; the caller
// is expected to re-run containment afterward, since widened cubes can now
// subsume one another.
func (p *Problem) ExpandWithOffSet(l, off *List) {
	for ci, c := range l.cubes {
		if l.flags[ci] != flagLive {
			continue
		}
		for v := 0; v < p.v; v++ {
			orig := p.Get(c, v)
			if orig == DontCare {
				continue
			}
			p.Set(c, v, DontCare)
			if p.intersectsAnyLive(c, off) {
				p.Set(c, v, orig)
			}
		}
	}
}

func (p *Problem) intersectsAnyLive(c Cube, l *List) bool {
	for oi, oc := range l.cubes {
		if l.flags[oi] == flagLive && p.IsIntersectionCube(c, oc) {
			return true
		}
	}
	return false
}
