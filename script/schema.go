// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

// commandSchemaJSON is compiled once into schemaCompiled (run.go) and used to reject
// malformed command objects (unknown cmd, slot out of 0..8, wrong field
// types) before the two-phase interpreter ever looks at a single field by
// type assertion, the way opal-lang-opal compiles a schema ahead of
// validating a decorator invocation.
const commandSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "cmd": {
        "type": "string",
        "enum": ["bcl2slot", "show", "intersection0", "subtract0", "equal0", "exchange0", "copy0"]
      },
      "slot": { "type": "integer", "minimum": 0, "maximum": 8 },
      "bcl": {
        "oneOf": [
          { "type": "string" },
          { "type": "array", "items": { "type": "string" } }
        ]
      },
      "expr": { "type": "string" },
      "label": { "type": "string" },
      "label0": { "type": "string" }
    },
    "required": ["cmd"],
    "additionalProperties": false
  }
}`
