// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/expr"
	"github.com/godoctor/boolcube/vartable"
)

var schemaCompiled = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("script.json", strings.NewReader(commandSchemaJSON)); err != nil {
		panic("script: embedded schema failed to load: " + err.Error())
	}
	sch, err := compiler.Compile("script.json")
	if err != nil {
		panic("script: embedded schema failed to compile: " + err.Error())
	}
	return sch
}()

// Run decodes, validates, and executes a JSON command script (a top-level
// array of command objects), returning the reply of the final command, as
// the teacher's protocol.Run does for a batch of commands.
func Run(scriptJSON []byte) (Reply, error) {
	var anyDoc interface{}
	if err := json.Unmarshal(scriptJSON, &anyDoc); err != nil {
		return nil, fmt.Errorf("script: invalid JSON: %w", err)
	}
	if err := schemaCompiled.Validate(anyDoc); err != nil {
		return nil, fmt.Errorf("script: schema validation failed: %w", err)
	}

	var raws []map[string]interface{}
	if err := json.Unmarshal(scriptJSON, &raws); err != nil {
		return nil, fmt.Errorf("script: invalid JSON: %w", err)
	}

	vt := vartable.New()
	width := 0
	for _, raw := range raws {
		if v, ok := raw["expr"]; ok {
			text, _ := v.(string)
			ast, err := expr.Parse(text)
			if err != nil {
				return nil, err
			}
			for _, name := range expr.Collect(ast) {
				vt.Intern(name)
			}
		}
		if v, ok := raw["bcl"]; ok && width == 0 {
			text, err := bclText(v)
			if err == nil {
				if w := cube.InferWidth(text); w > 0 {
					width = w
				}
			}
		}
	}
	if vt.Len() > width {
		width = vt.Len()
	}
	if width == 0 {
		return nil, fmt.Errorf("script: could not determine variable count from script")
	}

	p := cube.NewProblem(width)
	s := newState(p, vt)
	table := commandTable()

	var last Reply
	for i, raw := range raws {
		name, _ := raw["cmd"].(string)
		cmd, ok := table[name]
		if !ok {
			return nil, fmt.Errorf("script: unknown command %q at index %d", name, i)
		}
		reply, err := cmd.Run(s, raw)
		if err != nil {
			s.Log.Error("command %d (%s): %v", i, name, err)
			return nil, err
		}
		last = reply
	}
	return last, nil
}
