// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "sort"

// SingleCubeContainment removes every live cube of l that is a proper
// subset of some other live cube in l, plus one cube of every equal pair.
// The outer loop fixes a "possibly containing" cube i in descending
// variable-count order (a subset has equal-or-greater variable count than
// what it's contained in, so this lets the comparison be pruned); for every
// other live cube j, j is killed if Get(j) is a subset of Get(i). Ties
// between equal cubes are broken by keeping the lower original index. Ends
// with Purge.
func (p *Problem) SingleCubeContainment(l *List) {
	n := len(l.cubes)
	if n == 0 {
		return
	}
	counts := make([]int, n)
	order := make([]int, 0, n)
	for i, c := range l.cubes {
		if l.flags[i] == flagLive {
			counts[i] = p.VariableCount(c)
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	for _, i := range order {
		if l.flags[i] != flagLive {
			continue
		}
		ci := l.cubes[i]
		for _, j := range order {
			if i == j || l.flags[j] != flagLive {
				continue
			}
			if counts[j] < counts[i] {
				continue
			}
			if counts[j] == counts[i] && j < i {
				// equal cubes: keep the lower index, so only the higher
				// index is considered a candidate for removal here.
				continue
			}
			if p.IsSubsetCube(ci, l.cubes[j]) {
				l.Kill(j)
			}
		}
	}
	l.Purge()
}

// IsCubeRedundant reports whether the live cube at pos is covered by the
// union of every other live cube in l: it builds the cofactor of l by that
// cube (excluding pos) and tests the result for tautology relative to the
// cube itself, i.e. whether l minus pos still covers pos.
func (p *Problem) IsCubeRedundant(l *List, pos int) (bool, error) {
	cof := p.CofactorByCube(l, l.cubes[pos], pos)
	return p.IsTautology(cof)
}

// IsCubeCovered reports whether c (not necessarily a member of l) is
// covered by the union of l's live cubes.
func (p *Problem) IsCubeCovered(l *List, c Cube) (bool, error) {
	cof := p.CofactorByCube(l, c, -1)
	return p.IsTautology(cof)
}

// MultiCubeContainment removes every live cube whose coverage is subsumed
// by the union of the others (the IRREDUNDANT step): cubes are tested in
// descending variable-count order (the cubes with the most fixed literals,
// which cover the fewest minterms, are tried first) and killed if IsCubeRedundant reports they contribute nothing.
// Ends with Purge.
func (p *Problem) MultiCubeContainment(l *List) error {
	n := len(l.cubes)
	if n == 0 {
		return nil
	}
	counts := make([]int, n)
	order := make([]int, 0, n)
	for i, c := range l.cubes {
		if l.flags[i] == flagLive {
			counts[i] = p.VariableCount(c)
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	for _, i := range order {
		if l.flags[i] != flagLive {
			continue
		}
		redundant, err := p.IsCubeRedundant(l, i)
		if err != nil {
			return err
		}
		if redundant {
			l.Kill(i)
		}
	}
	l.Purge()
	return nil
}
