// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustList(t *testing.T, p *Problem, lines ...string) *List {
	t.Helper()
	l, err := p.ParseList(joinLines(lines))
	require.NoError(t, err)
	return l
}

func joinLines(lines []string) string {
	s := ""
	for i, l := range lines {
		if i > 0 {
			s += "\n"
		}
		s += l
	}
	return s
}

func encodedSet(t *testing.T, p *Problem, l *List) map[string]bool {
	t.Helper()
	out := make(map[string]bool)
	for i := 0; i < l.Count(); i++ {
		if l.IsLive(i) {
			out[p.EncodeCube(l.Get(i))] = true
		}
	}
	return out
}

// Scenario 1: V=3, MCC leaves exactly the three primes.
func TestScenarioMCCPrimes(t *testing.T) {
	p := NewProblem(3)
	l := mustList(t, p, "-11", "110", "11-", "0--")
	require.NoError(t, p.MultiCubeContainment(l))

	got := encodedSet(t, p, l)
	want := map[string]bool{"0--": true, "11-": true, "-11": true}
	require.Equal(t, want, got)
	require.NotContains(t, got, "110")
}

// Scenario 2: V=6, complement is nonempty and disjoint from the original.
func TestScenarioComplementDisjoint(t *testing.T) {
	p := NewProblem(6)
	l := mustList(t, p, "1-1-11", "110011", "1-0-10", "1001-0")

	comp, err := p.ComplementBySubtract(l)
	require.NoError(t, err)
	require.Greater(t, comp.LiveCount(), 0)

	inter := p.NewList()
	p.IntersectionInto(inter, l, comp)
	require.Equal(t, 0, inter.LiveCount())
}

// Scenario 3: V=5, a classic full-coverage tautology.
func TestScenarioFullCoverageTautology(t *testing.T) {
	p := NewProblem(5)
	l := mustList(t, p, "----1", "---10", "---00")

	ok, err := p.IsTautology(l)
	require.NoError(t, err)
	require.True(t, ok)
}

// Scenario 4: V=4, the two complement algorithms denote the same function.
func TestScenarioDualComplementCrossCheck(t *testing.T) {
	p := NewProblem(4)

	bySub, err := p.ComplementBySubtract(mustList(t, p, "-0-1", "1-0-", "-1--", "0--1"))
	require.NoError(t, err)
	byCof, err := p.ComplementByCofactor(mustList(t, p, "-0-1", "1-0-", "-1--", "0--1"))
	require.NoError(t, err)
	orig := mustList(t, p, "-0-1", "1-0-", "-1--", "0--1")

	for _, comp := range []*List{bySub, byCof} {
		union := p.NewList()
		union.AppendAllFrom(orig)
		union.AppendAllFrom(comp)
		ok, err := p.IsTautology(union)
		require.NoError(t, err)
		require.True(t, ok)

		inter := p.NewList()
		p.IntersectionInto(inter, orig, comp)
		require.Equal(t, 0, inter.LiveCount())
	}
}

// Scenario 5: the random-tautology generator and its mutation, for V in
// 17..25.
func TestScenarioRandomTautologyRegression(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for v := 17; v <= 25; v++ {
		p := NewProblem(v)
		l := p.RandomTautology(rng, v+2)

		ok, err := p.IsTautology(l)
		require.NoError(t, err, "V=%d", v)
		require.True(t, ok, "V=%d: generator did not build a tautology", v)

		p.MutateDontCareToOne(rng, l, v)
		ok, err = p.IsTautology(l)
		require.NoError(t, err, "V=%d", v)
		require.False(t, ok, "V=%d: mutated list is still a tautology", v)
	}
}

// Scenario 6: minimizing a random tautology collapses it to the single
// all-dontcare cube.
func TestScenarioMinimizeRandomTautologyToSingleton(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewProblem(10)
	l := p.RandomTautology(rng, 12)

	require.NoError(t, p.Minimize(l))
	require.Equal(t, 1, l.LiveCount())
	require.Equal(t, p.EncodeCube(p.Universal()), p.EncodeCube(l.Get(0)))
}

// Boundary: two cubes 1- and 0- over V=2 are a tautology after SCC (neither
// subsumes the other) and after cofactoring on variable 0.
func TestBoundaryTwoCubeTautology(t *testing.T) {
	p := NewProblem(2)
	l := mustList(t, p, "1-", "0-")

	before := l.LiveCount()
	p.SingleCubeContainment(l)
	require.Equal(t, before, l.LiveCount(), "neither cube should subsume the other")

	ok, err := p.IsTautology(l)
	require.NoError(t, err)
	require.True(t, ok)

	f0 := p.CofactorByVar(l, 0, Zero)
	ok0, err := p.IsTautology(f0)
	require.NoError(t, err)
	require.True(t, ok0)

	f1 := p.CofactorByVar(l, 0, One)
	ok1, err := p.IsTautology(f1)
	require.NoError(t, err)
	require.True(t, ok1)
}

// Boundary: empty list is not a tautology, and its complement is universal.
func TestBoundaryEmptyList(t *testing.T) {
	p := NewProblem(3)
	l := p.NewList()

	ok, err := p.IsTautology(l)
	require.NoError(t, err)
	require.False(t, ok)

	comp, err := p.ComplementBySubtract(l)
	require.NoError(t, err)
	require.Equal(t, 1, comp.LiveCount())
	require.Equal(t, p.EncodeCube(p.Universal()), p.EncodeCube(comp.Get(0)))
}

// Boundary: a single all-dontcare cube is a tautology with an empty
// complement.
func TestBoundarySingleUniversalCube(t *testing.T) {
	p := NewProblem(3)
	l := p.NewList()
	l.AppendCopy(p.Universal())

	ok, err := p.IsTautology(l)
	require.NoError(t, err)
	require.True(t, ok)

	comp, err := p.ComplementBySubtract(l)
	require.NoError(t, err)
	require.Equal(t, 0, comp.LiveCount())
}
