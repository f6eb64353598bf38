// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/vartable"
)

// Collect walks ast and returns every identifier it references, in
// first-encountered order, duplicates included. Callers intern each into a
// vartable.Table before sizing the cube.Problem that Build will need.
func Collect(ast *OrExpr) []string {
	var names []string
	collectOr(ast, &names)
	return names
}

func collectOr(e *OrExpr, out *[]string) {
	collectAnd(e.Left, out)
	for _, r := range e.Rest {
		collectAnd(r, out)
	}
}

func collectAnd(e *AndExpr, out *[]string) {
	collectAtom(e.Left, out)
	for _, r := range e.Rest {
		collectAtom(r, out)
	}
}

func collectAtom(a *Atom, out *[]string) {
	switch {
	case a.Not != nil:
		collectAtom(a.Not, out)
	case a.Group != nil:
		collectOr(a.Group, out)
	case a.Ident != nil:
		*out = append(*out, *a.Ident)
	}
}

// nnf is the AST in negation normal form: Not has already been propagated
// down to the leaves by negateOr/negateAnd/negateAtom, so building a cube list from it never needs
// to complement an intermediate result.
type nnf interface{ isNNF() }

type nnfOr struct{ children []nnf }
type nnfAnd struct{ children []nnf }
type nnfLit struct {
	name     string
	polarity cube.Value // Zero or One
}
type nnfConst struct{ value bool }

func (nnfOr) isNNF()    {}
func (nnfAnd) isNNF()   {}
func (nnfLit) isNNF()   {}
func (nnfConst) isNNF() {}

// negateOr lowers an OrExpr to NNF; parity true means the whole expression is
// negated (De Morgan pushes that negation through AND/OR, flipping each, and
// through a literal, flipping its polarity).
func negateOr(e *OrExpr, parity bool) nnf {
	children := make([]nnf, 0, 1+len(e.Rest))
	children = append(children, negateAnd(e.Left, parity))
	for _, r := range e.Rest {
		children = append(children, negateAnd(r, parity))
	}
	if parity {
		return nnfAnd{children}
	}
	return nnfOr{children}
}

func negateAnd(e *AndExpr, parity bool) nnf {
	children := make([]nnf, 0, 1+len(e.Rest))
	children = append(children, negateAtom(e.Left, parity))
	for _, r := range e.Rest {
		children = append(children, negateAtom(r, parity))
	}
	if parity {
		return nnfOr{children}
	}
	return nnfAnd{children}
}

func negateAtom(a *Atom, parity bool) nnf {
	switch {
	case a.Not != nil:
		return negateAtom(a.Not, !parity)
	case a.Group != nil:
		return negateOr(a.Group, parity)
	case a.Integer != nil:
		v := *a.Integer != 0
		if parity {
			v = !v
		}
		return nnfConst{v}
	case a.Ident != nil:
		p := cube.One
		if parity {
			p = cube.Zero
		}
		return nnfLit{*a.Ident, p}
	default:
		panic("expr: atom with no alternative set")
	}
}

// Build lowers ast into a cube list over p, using vt to resolve identifiers
// to column indices. vt must already have every name Collect returned
// interned, and p must be sized to vt.Len().
func Build(p *cube.Problem, vt *vartable.Table, ast *OrExpr) *cube.List {
	tree := negateOr(ast, false)
	return buildNode(p, vt, tree)
}

func buildNode(p *cube.Problem, vt *vartable.Table, n nnf) *cube.List {
	switch t := n.(type) {
	case nnfConst:
		l := p.NewList()
		if t.value {
			l.AppendCopy(p.Universal())
		}
		return l
	case nnfLit:
		idx, ok := vt.Lookup(t.name)
		if !ok {
			panic("expr: identifier " + t.name + " was not interned before Build")
		}
		c := p.NewCube()
		p.Set(c, idx, t.polarity)
		l := p.NewList()
		l.AppendCopy(c)
		return l
	case nnfAnd:
		acc := buildNode(p, vt, t.children[0])
		for _, ch := range t.children[1:] {
			rhs := buildNode(p, vt, ch)
			p.Intersection(acc, rhs)
		}
		return acc
	case nnfOr:
		acc := buildNode(p, vt, t.children[0])
		for _, ch := range t.children[1:] {
			rhs := buildNode(p, vt, ch)
			acc.AppendAllFrom(rhs)
		}
		p.SingleCubeContainment(acc)
		return acc
	default:
		panic("expr: unknown nnf node")
	}
}
