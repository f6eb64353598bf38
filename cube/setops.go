// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// IntersectionInto computes r := a /\ b: every pairwise cube intersection
// that is not Illegal is appended to r, followed by a single-cube
// containment sweep. r must be a distinct list from both a and b.
func (p *Problem) IntersectionInto(r, a, b *List) {
	if r == a || r == b {
		violate("IntersectionInto", "destination list must not alias either source list")
	}
	tmp := p.NewCube()
	for ai, ac := range a.cubes {
		if a.flags[ai] != flagLive {
			continue
		}
		for bi, bc := range b.cubes {
			if b.flags[bi] != flagLive {
				continue
			}
			if p.IntersectionCube(tmp, ac, bc) {
				r.AppendCopy(tmp)
			}
		}
	}
	p.SingleCubeContainment(r)
}

// Intersection replaces a, in place, with a /\ b.
func (p *Problem) Intersection(a, b *List) {
	r := p.NewList()
	p.IntersectionInto(r, a, b)
	r.CopyInto(a)
}

// AddAll appends every live cube of b to a: a plain union with no
// simplification.
func (p *Problem) AddAll(a, b *List) {
	a.AppendAllFrom(b)
}
