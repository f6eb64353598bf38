// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "strings"

// InferWidth returns the variable count implied by the first non-blank line
// of s: the number of characters on that line once whitespace (space, tab)
// is stripped. Returns 0 if s has no non-blank line.
func InferWidth(s string) int {
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, line)
		if trimmed != "" {
			return len(trimmed)
		}
	}
	return 0
}

// decodeValue maps one character of the textual alphabet to its two-bit
// code: '0' -> Zero, '1' -> One, '-' -> DontCare, 'x' -> Illegal, and any
// other character defaults to DontCare.
func decodeValue(r rune) Value {
	switch r {
	case '0':
		return Zero
	case '1':
		return One
	case 'x', 'X':
		return Illegal
	case '-':
		return DontCare
	default:
		return DontCare
	}
}

// EncodeValue renders a two-bit code as one of 'x', '0', '1', '-'.
func EncodeValue(v Value) byte {
	switch v {
	case Illegal:
		return 'x'
	case Zero:
		return '0'
	case One:
		return '1'
	case DontCare:
		return '-'
	default:
		return '?'
	}
}

// ParseCube decodes one textual cube line (ignoring spaces and tabs) into a
// freshly allocated cube of this problem's width. Returns ErrParse if the
// non-whitespace character count does not equal p.V.
func (p *Problem) ParseCube(line string) (Cube, error) {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, line)
	if len(stripped) != p.v {
		return nil, ErrParse
	}
	c := p.NewCube()
	for i, r := range stripped {
		p.Set(c, i, decodeValue(r))
	}
	return c, nil
}

// EncodeCube renders c in the textual alphabet, one character per variable.
func (p *Problem) EncodeCube(c Cube) string {
	buf := make([]byte, p.v)
	for i := 0; i < p.v; i++ {
		buf[i] = EncodeValue(p.Get(c, i))
	}
	return string(buf)
}

// ParseList decodes a textual cube list: one cube per line, blank lines and
// surrounding whitespace ignored, reading to end of string.
func (p *Problem) ParseList(s string) (*List, error) {
	l := p.NewList()
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		c, err := p.ParseCube(line)
		if err != nil {
			return nil, err
		}
		l.AppendCopy(c)
	}
	return l, nil
}

// AppendFromString parses s (one cube per line, blank lines and
// surrounding whitespace ignored) and appends every decoded cube to l.
func (l *List) AppendFromString(s string) error {
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		c, err := l.p.ParseCube(line)
		if err != nil {
			return err
		}
		l.AppendCopy(c)
	}
	return nil
}

// EncodeList renders l as one textual cube line per live cube.
func (p *Problem) EncodeList(l *List) string {
	var b strings.Builder
	for i, c := range l.cubes {
		if l.flags[i] != flagLive {
			continue
		}
		b.WriteString(p.EncodeCube(c))
		b.WriteByte('\n')
	}
	return b.String()
}
