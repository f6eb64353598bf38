// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// Minimize runs the heuristic "widen-and-trim" pipeline in place on l:
// single-cube containment, build the off-set via ComplementBySubtract,
// grow every cube to a prime implicant with respect to that off-set,
// single-cube containment again (expansion can make cubes subsume each
// other), and a final multi-cube containment pass. The result denotes the
// same function as the input, is free of both SCC and MCC redundancy, and
// every cube is a prime implicant relative to the off-set computed in step
// two — but global minimality (searching for an alternative prime cover) is
// not attempted.
func (p *Problem) Minimize(l *List) error {
	p.SingleCubeContainment(l)

	off, err := p.ComplementBySubtract(l)
	if err != nil {
		return err
	}

	p.ExpandWithOffSet(l, off)
	p.SingleCubeContainment(l)

	return p.MultiCubeContainment(l)
}
