// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/vartable"
)

func buildFromSource(t *testing.T, source string) (*cube.Problem, *cube.List, *vartable.Table) {
	t.Helper()
	ast, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	vt := vartable.New()
	for _, name := range Collect(ast) {
		vt.Intern(name)
	}
	p := cube.NewProblem(vt.Len())
	return p, Build(p, vt, ast), vt
}

func TestParseAndBuild(t *testing.T) {
	p, l, vt := buildFromSource(t, "a and b")
	if l.LiveCount() != 1 {
		t.Fatalf("LiveCount = %d, want 1", l.LiveCount())
	}
	a, _ := vt.Lookup("a")
	b, _ := vt.Lookup("b")
	c := l.Get(0)
	if p.Get(c, a) != cube.One || p.Get(c, b) != cube.One {
		t.Errorf("expected a=1, b=1, got %s", p.EncodeCube(c))
	}
}

func TestDeMorganPushesNotToLeaves(t *testing.T) {
	p, l, vt := buildFromSource(t, "not (a and b)")
	if l.LiveCount() != 2 {
		t.Fatalf("LiveCount = %d, want 2", l.LiveCount())
	}
	a, _ := vt.Lookup("a")
	b, _ := vt.Lookup("b")
	sawNotA, sawNotB := false, false
	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		c := l.Get(i)
		if p.Get(c, a) == cube.Zero && p.Get(c, b) == cube.DontCare {
			sawNotA = true
		}
		if p.Get(c, b) == cube.Zero && p.Get(c, a) == cube.DontCare {
			sawNotB = true
		}
	}
	if !sawNotA || !sawNotB {
		t.Errorf("expected (not a) or (not b), got %s", p.EncodeList(l))
	}
}

func TestConstantTrueAbsorbsOr(t *testing.T) {
	p, l, _ := buildFromSource(t, "a or 1")
	if l.LiveCount() != 1 {
		t.Fatalf("LiveCount = %d, want 1 (universal cube absorbs a)", l.LiveCount())
	}
	if !p.IsTautologyCube(l.Get(0)) {
		t.Errorf("expected the universal cube, got %s", p.EncodeCube(l.Get(0)))
	}
}

func TestContradictionIsEmpty(t *testing.T) {
	_, l, _ := buildFromSource(t, "a and not a")
	if l.LiveCount() != 0 {
		t.Fatalf("LiveCount = %d, want 0", l.LiveCount())
	}
}

func TestSyntaxError(t *testing.T) {
	if _, err := Parse("a and"); err == nil {
		t.Fatalf("expected a syntax error")
	}
}
