// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// IsTautology reports whether l's live cubes cover the entire 2^V-minterm
// space, via recursive Shannon expansion on the most-binate variable. An
// empty list is never a tautology. If the list is unate (no binate
// variable), it is a tautology iff it contains the all-dontcare cube.
// Otherwise l is split by the chosen variable and both cofactors must
// themselves be tautologies. Recursion is bounded; ErrRecursionLimit is
// returned rather than growing the call stack without limit.
func (p *Problem) IsTautology(l *List) (bool, error) {
	return p.isTautology(l, 0)
}

func (p *Problem) isTautology(l *List, depth int) (bool, error) {
	if depth > maxRecursionDepth {
		return false, ErrRecursionLimit
	}
	if l.LiveCount() == 0 {
		return false, nil
	}
	p.ComputeCounts(l)
	i := p.MaxBinateSplitVar()
	if i == NoSplitVar {
		for ci, c := range l.cubes {
			if l.flags[ci] == flagLive && p.IsTautologyCube(c) {
				return true, nil
			}
		}
		return false, nil
	}

	f0 := p.CofactorByVar(l, i, Zero)
	t0, err := p.isTautology(f0, depth+1)
	if err != nil || !t0 {
		return false, err
	}
	f1 := p.CofactorByVar(l, i, One)
	t1, err := p.isTautology(f1, depth+1)
	if err != nil {
		return false, err
	}
	return t1, nil
}

// IsSubsetList reports whether every minterm of b is covered by a, via
// IsCubeCovered on each cube of b. This cofactor-based test is substantially
// faster on typical workloads than the equivalent "subtract b from a is
// empty" formulation and is the default exposed here.
func (p *Problem) IsSubsetList(a, b *List) (bool, error) {
	for bi, c := range b.cubes {
		if b.flags[bi] != flagLive {
			continue
		}
		covered, err := p.IsCubeCovered(a, c)
		if err != nil {
			return false, err
		}
		if !covered {
			return false, nil
		}
	}
	return true, nil
}

// IsSubsetListBySubtract is the alternate implementation of IsSubsetList:
// a is a subset of... rather, every minterm of b is covered by a iff
// subtracting a from b (with MCC enabled) leaves nothing. Kept for parity
// testing against IsSubsetList; callers should prefer IsSubsetList.
func (p *Problem) IsSubsetListBySubtract(a, b *List) bool {
	diff := b.Clone()
	p.Subtract(diff, a, true)
	return diff.LiveCount() == 0
}
