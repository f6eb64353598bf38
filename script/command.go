// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/expr"
)

func slotOf(raw map[string]interface{}) int {
	if v, ok := raw["slot"]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func labelOf(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// argumentList builds the *cube.List a command's "bcl" or "expr" field
// denotes. Exactly one of the two is expected to be present; bcl is tried
// first since it requires no parsing.
func argumentList(s *State, raw map[string]interface{}) (*cube.List, error) {
	if v, ok := raw["bcl"]; ok {
		text, err := bclText(v)
		if err != nil {
			return nil, err
		}
		return s.Problem.ParseList(text)
	}
	if v, ok := raw["expr"]; ok {
		text, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("script: \"expr\" must be a string")
		}
		ast, err := expr.Parse(text)
		if err != nil {
			return nil, err
		}
		return expr.Build(s.Problem, s.VarTable, ast), nil
	}
	return nil, fmt.Errorf("script: command has neither \"bcl\" nor \"expr\"")
}

// bclText normalizes the "bcl" field (a single string, or an array of
// per-cube strings) into the newline-joined form cube.Problem.ParseList
// expects.
func bclText(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []interface{}:
		out := ""
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("script: \"bcl\" array element %d is not a string", i)
			}
			if i > 0 {
				out += "\n"
			}
			out += s
		}
		return out, nil
	default:
		return "", fmt.Errorf("script: \"bcl\" must be a string or an array of strings")
	}
}

type bcl2slotCmd struct{}

func (bcl2slotCmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	arg, err := argumentList(s, raw)
	if err != nil {
		return nil, err
	}
	slot := slotOf(raw)
	s.Slots[slot] = arg
	s.markWritten(slot)
	return Reply{"reply": "OK"}, nil
}

type showCmd struct{}

func (showCmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	slot := slotOf(raw)
	label := labelOf(raw, "label", "label0")
	if label == "" {
		label = fmt.Sprintf("slot%d", slot)
	}
	return Reply{
		"reply":   "OK",
		label:     s.Problem.EncodeList(s.Slots[slot]),
		"written": s.isWritten(slot),
	}, nil
}

type intersection0Cmd struct{}

func (intersection0Cmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	arg, err := argumentList(s, raw)
	if err != nil {
		return nil, err
	}
	s.Problem.Intersection(s.Slots[0], arg)
	s.Empty = s.Slots[0].LiveCount() == 0
	s.markWritten(0)
	return Reply{"reply": "OK", "empty": s.Empty}, nil
}

type subtract0Cmd struct{}

func (subtract0Cmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	arg, err := argumentList(s, raw)
	if err != nil {
		return nil, err
	}
	if err := s.Problem.Subtract(s.Slots[0], arg, true); err != nil {
		return nil, err
	}
	s.Empty = s.Slots[0].LiveCount() == 0
	s.markWritten(0)
	return Reply{"reply": "OK", "empty": s.Empty}, nil
}

type equal0Cmd struct{}

func (equal0Cmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	arg, err := argumentList(s, raw)
	if err != nil {
		return nil, err
	}
	// IsSubsetList(a, b) reports whether b is covered by a (b subset of a),
	// per spec.md's subset-duality convention, so the "subset"/"superset"
	// flags below read in the opposite argument order from their names.
	subset, err := s.Problem.IsSubsetList(arg, s.Slots[0])
	if err != nil {
		return nil, err
	}
	superset, err := s.Problem.IsSubsetList(s.Slots[0], arg)
	if err != nil {
		return nil, err
	}
	s.Subset, s.Superset = subset, superset
	return Reply{"reply": "OK", "subset": subset, "superset": superset}, nil
}

type exchange0Cmd struct{}

func (exchange0Cmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	slot := slotOf(raw)
	s.Slots[0], s.Slots[slot] = s.Slots[slot], s.Slots[0]
	s.markWritten(0)
	s.markWritten(slot)
	return Reply{"reply": "OK"}, nil
}

type copy0Cmd struct{}

func (copy0Cmd) Run(s *State, raw map[string]interface{}) (Reply, error) {
	slot := slotOf(raw)
	s.Slots[0].CopyInto(s.Slots[slot])
	s.markWritten(slot)
	return Reply{"reply": "OK"}, nil
}

func commandTable() map[string]Command {
	return map[string]Command{
		"bcl2slot":      bcl2slotCmd{},
		"show":          showCmd{},
		"intersection0": intersection0Cmd{},
		"subtract0":     subtract0Cmd{},
		"equal0":        equal0Cmd{},
		"exchange0":     exchange0Cmd{},
		"copy0":         copy0Cmd{},
	}
}
