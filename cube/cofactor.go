// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// CofactorByVar computes the Shannon cofactor of l with respect to variable
// i fixed to polarity (Zero or One): cubes that already leave i as DontCare
// pass through unchanged; cubes fixing i to polarity survive with i widened
// to DontCare (the restriction makes the constraint redundant); cubes
// fixing i to the opposite polarity are dropped, since they contribute no
// minterm to the restricted subspace. The result may contain cubes that now
// subsume one another, so a single-cube containment sweep runs before
// returning.
func (p *Problem) CofactorByVar(l *List, i int, polarity Value) *List {
	if polarity != Zero && polarity != One {
		violate("CofactorByVar", "polarity must be Zero or One, got %v", polarity)
	}
	out := p.NewList()
	for ci, c := range l.cubes {
		if l.flags[ci] != flagLive {
			continue
		}
		switch p.Get(c, i) {
		case DontCare:
			out.AppendCopy(c)
		case polarity:
			idx := out.AppendCopy(c)
			p.Set(out.Get(idx), i, DontCare)
		default:
			// opposite polarity: no overlap with the restricted subspace
		}
	}
	p.SingleCubeContainment(out)
	return out
}

// CofactorByCube computes the cofactor of l with respect to an arbitrary
// cube c, excluding the cube at excludeIndex (pass -1 to exclude none).
// Every surviving cube l[j] is OR'd, field by field, with the complement
// of c within DontCare (c's bits flipped and masked to two-bit fields),
// which simultaneously cofactors by every non-dontcare literal of c. A
// single-cube containment sweep follows. Used by the coverage tests
// (IsCubeRedundant, IsCubeCovered).
func (p *Problem) CofactorByCube(l *List, c Cube, excludeIndex int) *List {
	notC := make(Cube, p.words)
	for w := range notC {
		notC[w] = ^c[w]
	}
	out := p.NewList()
	for j, lc := range l.cubes {
		if l.flags[j] != flagLive || j == excludeIndex {
			continue
		}
		widened := cloneCube(lc)
		for w := range widened {
			widened[w] |= notC[w]
		}
		out.AppendCopy(widened)
	}
	p.SingleCubeContainment(out)
	return out
}
