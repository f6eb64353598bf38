// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// ComplementBySubtract is the preferred complement algorithm: starting from
// the universal cube, it subtracts l (deciding doMCC from l's unate/binate
// status — MCC is worth its cost only when sharp's expansion against a
// binate argument produces lots of overlap), then grows every surviving
// cube to a prime implicant with respect to l as the off-set and runs a
// final multi-cube containment pass. That last step is what keeps the
// complement noticeably smaller than the raw subtract result.
func (p *Problem) ComplementBySubtract(l *List) (*List, error) {
	p.ComputeCounts(l)
	doMCC := !p.IsUnate()

	result := p.NewList()
	result.AppendCopy(p.Universal())
	if err := p.Subtract(result, l, doMCC); err != nil {
		return nil, err
	}
	p.ExpandWithOffSet(result, l)
	if err := p.MultiCubeContainment(result); err != nil {
		return nil, err
	}
	return result, nil
}

// ComplementByCofactor is the recursive cofactor-splitting complement
// algorithm, retained for completeness and as a cross-check against
// ComplementBySubtract (see scenario 4 of the testable properties). It
// splits on the most-binate variable, recursively complements both
// cofactors, restricts each recursive result to the subspace it came from,
// merges pairs of cubes that differ only in that variable's polarity into a
// single wider cube, and finishes with the same expand/MCC cleanup as the
// subtract algorithm.
func (p *Problem) ComplementByCofactor(l *List) (*List, error) {
	c, err := p.complementByCofactor(l, 0)
	if err != nil {
		return nil, err
	}
	if err := p.MultiCubeContainment(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Problem) complementByCofactor(l *List, depth int) (*List, error) {
	if depth > maxRecursionDepth {
		return nil, ErrRecursionLimit
	}
	p.ComputeCounts(l)
	i := p.MaxBinateSplitVar()
	if i == NoSplitVar {
		return p.ComplementBySubtract(l)
	}

	f0 := p.CofactorByVar(l, i, Zero)
	p.SimpleExpand(f0)
	f1 := p.CofactorByVar(l, i, One)
	p.SimpleExpand(f1)

	c0, err := p.complementByCofactor(f0, depth+1)
	if err != nil {
		return nil, err
	}
	c1, err := p.complementByCofactor(f1, depth+1)
	if err != nil {
		return nil, err
	}

	// Restrict each recursive complement to the subspace its cofactor came
	// from: c0 only applies where i=Zero, c1 only where i=One.
	for ci, c := range c0.cubes {
		if c0.flags[ci] == flagLive {
			p.Set(c, i, Zero)
		}
	}
	p.SingleCubeContainment(c0)
	for ci, c := range c1.cubes {
		if c1.flags[ci] == flagLive {
			p.Set(c, i, One)
		}
	}
	p.SingleCubeContainment(c1)

	// Merge: a c1 cube (i=One) and a c0 cube (i=Zero) that agree on every
	// other field denote both polarities of i for the same remaining
	// restriction, so they can be replaced by one cube with i=DontCare.
	merged := p.NewList()
	tmp := p.NewCube()
	for c1i, c1c := range c1.cubes {
		if c1.flags[c1i] != flagLive {
			continue
		}
		p.CopyCube(tmp, c1c)
		p.Set(tmp, i, Zero)
		found := -1
		for c0i, c0c := range c0.cubes {
			if c0.flags[c0i] == flagLive && p.Equal(c0c, tmp) {
				found = c0i
				break
			}
		}
		if found >= 0 {
			p.Set(c0.cubes[found], i, DontCare)
		} else {
			merged.AppendCopy(c1c)
		}
	}

	c0.AppendAllFrom(merged)
	p.ExpandWithOffSet(c0, l)
	p.SingleCubeContainment(c0)
	return c0, nil
}
