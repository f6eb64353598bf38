// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// Sharp computes a # b ("a sharp b"), a's minterms that are not in b, as a
// cube list appended to accum. For every variable i where b holds
// a literal (i.e. b(i) != DontCare), it tries restricting a to the opposite
// literal: new := a(i) & not(b(i)). If new is not Illegal, a copy of a with
// i set to new is appended to accum. This produces up to |literals of b|
// cubes, which may overlap one another, whose union equals a \ b. Appends
// are unconditional; the caller is expected to run containment afterwards
// to prune overlap.
func (p *Problem) Sharp(accum *List, a, b Cube) {
	for i := 0; i < p.v; i++ {
		bi := p.Get(b, i)
		if bi == DontCare {
			continue
		}
		ai := p.Get(a, i)
		newVal := ai & (^bi & 3)
		if newVal == Illegal {
			continue
		}
		idx := accum.AppendCopy(a)
		p.Set(accum.Get(idx), i, newVal)
	}
}

// Subtract replaces a, in place, with a \ b: for every cube of b, every
// surviving cube of a is sharped against it into a fresh result list, the
// result replaces a, single-cube containment runs, and — when doMCC is set
// — multi-cube containment runs too. doMCC should be true when b is binate
// (sharp's worst case, many overlapping cubes); for a unate b, an inner MCC
// pass typically costs more than the reduction it buys, so callers are
// expected to decide doMCC from b's unate/binate status. ComplementBySubtract,
// which Minimize uses to build its off-set, decides it that way.
func (p *Problem) Subtract(a, b *List, doMCC bool) error {
	for bi, bc := range b.cubes {
		if b.flags[bi] != flagLive {
			continue
		}
		r := p.NewList()
		for ai, ac := range a.cubes {
			if a.flags[ai] != flagLive {
				continue
			}
			p.Sharp(r, ac, bc)
		}
		r.CopyInto(a)
		p.SingleCubeContainment(a)
		if doMCC {
			if err := p.MultiCubeContainment(a); err != nil {
				return err
			}
		}
	}
	return nil
}
