// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrSyntax is wrapped by the error Parse returns when an expression fails
// to parse; the participle error's position and message are included as
// text, not wrapped.
var ErrSyntax = errors.New("expr: syntax error")

var parser = participle.MustBuild[OrExpr](
	participle.Lexer(BoolExprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses s as an infix boolean expression and returns its AST.
func Parse(s string) (*OrExpr, error) {
	ast, err := parser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, reportDetail(s, err))
	}
	return ast, nil
}

func reportDetail(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return err.Error()
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return err.Error()
	}
	return fmt.Sprintf("line %d, column %d: %s", pos.Line, pos.Column, pe.Message())
}
