// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "testing"

func TestRoundTripCube(t *testing.T) {
	p := NewProblem(6)
	lines := []string{"0-1-0-", "111111", "000000", "------"}
	for _, line := range lines {
		c, err := p.ParseCube(line)
		if err != nil {
			t.Fatalf("ParseCube(%q): %v", line, err)
		}
		got := p.EncodeCube(c)
		if got != line {
			t.Errorf("round trip %q: got %q", line, got)
		}
	}
}

func TestParseCubeWrongWidth(t *testing.T) {
	p := NewProblem(4)
	if _, err := p.ParseCube("01-"); err != ErrParse {
		t.Errorf("expected ErrParse for short line, got %v", err)
	}
	if _, err := p.ParseCube("01--1"); err != ErrParse {
		t.Errorf("expected ErrParse for long line, got %v", err)
	}
}

func TestInferWidth(t *testing.T) {
	cases := map[string]int{
		"":            0,
		"\n\n  \n":    0,
		"01-x":        4,
		"  01-x  \n1": 4,
	}
	for in, want := range cases {
		if got := InferWidth(in); got != want {
			t.Errorf("InferWidth(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseListSkipsBlankLines(t *testing.T) {
	p := NewProblem(3)
	l, err := p.ParseList("0--\n\n  \n1--\n")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if l.LiveCount() != 2 {
		t.Fatalf("LiveCount = %d, want 2", l.LiveCount())
	}
}
