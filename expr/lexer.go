// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/alecthomas/participle/v2/lexer"

// BoolExprLexer tokenizes the infix boolean expression grammar. Keywords
// ("not", "and", "or") are not given their own token kind; like the kanso
// grammar's keyword handling, they are plain Ident tokens matched by literal
// string in the grammar productions of grammar.go.
var BoolExprLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[01]`, nil},
		{"Punct", `[()!]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
