// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// NoSplitVar is the sentinel returned by MaxBinateSplitVar when the list is
// unate (no binate variable exists).
const NoSplitVar = -1

// ComputeCounts recomputes, for every variable i, how many live cubes of l
// hold it at Zero and how many hold it at One. DontCare and tombstoned
// cubes contribute nothing. The table lives on the Problem and is
// overwritten by every call; a caller that interleaves ComputeCounts calls
// for two different lists without recomputing between reads will observe
// whichever list was counted most recently.
func (p *Problem) ComputeCounts(l *List) {
	for i := range p.zeroCounts {
		p.zeroCounts[i] = 0
		p.oneCounts[i] = 0
	}
	for ci, c := range l.cubes {
		if l.flags[ci] != flagLive {
			continue
		}
		for i := 0; i < p.v; i++ {
			switch p.Get(c, i) {
			case Zero:
				if p.zeroCounts[i] < 1<<15-1 {
					p.zeroCounts[i]++
				}
			case One:
				if p.oneCounts[i] < 1<<15-1 {
					p.oneCounts[i]++
				}
			}
		}
	}
	p.countedOn = l
}

// ZeroCount returns the last-computed zero-count for variable i.
func (p *Problem) ZeroCount(i int) int { return int(p.zeroCounts[i]) }

// OneCount returns the last-computed one-count for variable i.
func (p *Problem) OneCount(i int) int { return int(p.oneCounts[i]) }

// IsUnate reports whether, per the last ComputeCounts, every variable
// appears in at most one polarity across the list.
func (p *Problem) IsUnate() bool {
	for i := 0; i < p.v; i++ {
		if p.zeroCounts[i] > 0 && p.oneCounts[i] > 0 {
			return false
		}
	}
	return true
}

// MaxBinateSplitVar returns the binate variable (zeros[i] > 0 and
// ones[i] > 0) maximizing zeros[i]+ones[i], per the last ComputeCounts.
// Ties favor the lowest index. Returns NoSplitVar if the list is unate.
func (p *Problem) MaxBinateSplitVar() int {
	best := NoSplitVar
	bestScore := -1
	for i := 0; i < p.v; i++ {
		z, o := int(p.zeroCounts[i]), int(p.oneCounts[i])
		if z == 0 || o == 0 {
			continue
		}
		if score := z + o; score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// MaxSplitVar returns the variable maximizing zeros[i]+ones[i] without
// requiring binateness (a unate variable with a nonzero count is eligible).
// Returns NoSplitVar only if every variable has zero count on both sides.
func (p *Problem) MaxSplitVar() int {
	best := NoSplitVar
	bestScore := 0
	for i := 0; i < p.v; i++ {
		if score := int(p.zeroCounts[i]) + int(p.oneCounts[i]); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
