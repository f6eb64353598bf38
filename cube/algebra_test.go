// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComplementLaw checks that L union complement(L) is a tautology and
// that L intersected with its complement is empty after SCC, for a handful
// of fixed lists.
func TestComplementLaw(t *testing.T) {
	p := NewProblem(4)
	lists := [][]string{
		{"-0-1", "1-0-", "-1--"},
		{"0000", "1111"},
		{"--1-", "0---"},
	}
	for _, lines := range lists {
		l := mustList(t, p, lines...)
		comp, err := p.ComplementBySubtract(l)
		require.NoError(t, err)

		union := p.NewList()
		union.AppendAllFrom(l)
		union.AppendAllFrom(comp)
		ok, err := p.IsTautology(union)
		require.NoError(t, err)
		require.True(t, ok)

		inter := p.NewList()
		p.IntersectionInto(inter, l, comp)
		require.Equal(t, 0, inter.LiveCount())
	}
}

// TestSubtractLaw checks a' subset a, a' disjoint from b, and a' union b
// superset of a (via a subset check).
func TestSubtractLaw(t *testing.T) {
	p := NewProblem(4)
	a := mustList(t, p, "--1-", "1-0-", "0-1-")
	b := mustList(t, p, "1-0-", "--11")

	aCopy := p.NewList()
	a.CopyInto(aCopy)

	require.NoError(t, p.Subtract(a, b, true))

	// IsSubsetList(x, y) reports whether y is covered by x, so "a' subset
	// of aCopy" reads as IsSubsetList(aCopy, a).
	subOfOrig, err := p.IsSubsetList(aCopy, a)
	require.NoError(t, err)
	require.True(t, subOfOrig)

	inter := p.NewList()
	p.IntersectionInto(inter, a, b)
	require.Equal(t, 0, inter.LiveCount())

	union := p.NewList()
	union.AppendAllFrom(a)
	union.AppendAllFrom(b)
	origSubUnion, err := p.IsSubsetList(union, aCopy)
	require.NoError(t, err)
	require.True(t, origSubUnion)
}

// TestIntersectionCommutativity checks intersection(a,b) and intersection(b,a)
// denote the same function (mutual subset).
func TestIntersectionCommutativity(t *testing.T) {
	p := NewProblem(4)
	a := mustList(t, p, "--1-", "1-0-")
	b := mustList(t, p, "1-0-", "--11")

	ab := p.NewList()
	p.IntersectionInto(ab, a, b)
	ba := p.NewList()
	p.IntersectionInto(ba, b, a)

	// IsSubsetList(x, y) reports whether y is covered by x.
	sub1, err := p.IsSubsetList(ba, ab)
	require.NoError(t, err)
	require.True(t, sub1)
	sub2, err := p.IsSubsetList(ab, ba)
	require.NoError(t, err)
	require.True(t, sub2)
}

// TestSCCIdempotence checks applying SCC twice equals applying it once, and
// that no live cube subsumes another afterwards.
func TestSCCIdempotence(t *testing.T) {
	p := NewProblem(3)
	l := mustList(t, p, "-11", "110", "11-", "0--", "1-1")
	p.SingleCubeContainment(l)
	after1 := encodedSet(t, p, l)

	p.SingleCubeContainment(l)
	after2 := encodedSet(t, p, l)
	require.Equal(t, after1, after2)

	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		for j := 0; j < l.Count(); j++ {
			if i == j || !l.IsLive(j) {
				continue
			}
			require.False(t, p.IsSubsetCube(l.Get(j), l.Get(i)),
				"cube %d should not subsume live cube %d after SCC", j, i)
		}
	}
}

// TestMCCPreservesFunction checks MCC does not change the union and leaves
// no redundant cube.
func TestMCCPreservesFunction(t *testing.T) {
	p := NewProblem(3)
	l := mustList(t, p, "-11", "110", "11-", "0--")
	before := p.NewList()
	l.CopyInto(before)

	require.NoError(t, p.MultiCubeContainment(l))

	// IsSubsetList(x, y) reports whether y is covered by x.
	subBeforeAfter, err := p.IsSubsetList(l, before)
	require.NoError(t, err)
	require.True(t, subBeforeAfter)
	subAfterBefore, err := p.IsSubsetList(before, l)
	require.NoError(t, err)
	require.True(t, subAfterBefore)

	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		redundant, err := p.IsCubeRedundant(l, i)
		require.NoError(t, err)
		require.False(t, redundant)
	}
}

// TestExpandMonotonicity checks every surviving cube after ExpandWithOffSet
// is a superset of the cube that was at its index beforehand.
func TestExpandMonotonicity(t *testing.T) {
	p := NewProblem(5)
	l := mustList(t, p, "0-1-0", "1-0-1", "--100")
	off := mustList(t, p, "11111", "00000")

	before := make([]Cube, l.Count())
	for i := 0; i < l.Count(); i++ {
		before[i] = cloneCube(l.Get(i))
	}

	p.ExpandWithOffSet(l, off)

	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		require.True(t, p.IsSubsetCube(l.Get(i), before[i]),
			"expanded cube %d must be a superset of its pre-expansion cube", i)
	}
}

// TestSubsetDuality checks is_subset(a,b) iff subtract(b,a,true) is empty.
func TestSubsetDuality(t *testing.T) {
	p := NewProblem(4)
	cases := [][2][]string{
		{{"--1-"}, {"0-1-", "1-1-"}},
		{{"0-1-", "1-1-"}, {"--1-"}},
		{{"0000"}, {"1111"}},
	}
	for _, c := range cases {
		a := mustList(t, p, c[0]...)
		b := mustList(t, p, c[1]...)

		sub, err := p.IsSubsetList(a, b)
		require.NoError(t, err)

		bCopy := p.NewList()
		b.CopyInto(bCopy)
		require.NoError(t, p.Subtract(bCopy, a, true))
		require.Equal(t, sub, bCopy.LiveCount() == 0)
	}
}
