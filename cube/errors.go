// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "fmt"

// Errors returned by operations that may legitimately fail on adversarial
// input: a parse failure on textual input, or a recursion depth bound
// exceeded during tautology or cofactor-complement evaluation. None of these
// are retried internally.
var (
	ErrParse          = fmt.Errorf("boolcube: parse error")
	ErrRecursionLimit = fmt.Errorf("boolcube: recursion limit exceeded")
)

// ContractViolation is the panic value raised when a caller violates a usage
// contract the core does not expect to run under: an out-of-range variable
// index, a scratch-frame pop without a matching push, or an aliased
// IntersectionInto destination. The core is not expected to run with invalid
// callers, so these are fatal rather than returned as errors.
type ContractViolation struct {
	Op      string
	Message string
}

func (v ContractViolation) Error() string {
	return fmt.Sprintf("boolcube: contract violation in %s: %s", v.Op, v.Message)
}

func violate(op, format string, args ...interface{}) {
	panic(ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)})
}
