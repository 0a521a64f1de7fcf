// 12 Feb 2025

// Package metric has the two per-sequence numbers everything else is
// built on: coverage and identity. Both are pure functions over byte
// slices. They never fail. Degenerate input gives 0, not an error,
// since these get called on whatever a parser produced.
package metric

import (
	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

// Coverage returns the fraction of columns in s holding a real
// residue. If mask is not nil, only columns where mask is true are
// eligible; columns past the end of a short mask stay eligible, the
// same as Identity treats them. Columns past the end of s count as
// gaps. If there are no eligible columns at all, the answer is 0.
func Coverage(s []byte, queryLen int, mask []bool) float64 {
	var eligible, covered int
	for i := 0; i < queryLen; i++ {
		if mask != nil && i < len(mask) && !mask[i] {
			continue
		}
		eligible++
		if i < len(s) && !NonResidue(s[i]) {
			covered++
		}
	}
	if eligible == 0 {
		return 0
	}
	return float64(covered) / float64(eligible)
}

// Identity returns the fraction of columns where a and b agree,
// counted only over columns where both hold a real residue. The
// comparison ignores case. If mask is not nil, only mask-true columns
// are considered. Sequences of different lengths get 0. So does a
// pair with no shared residue columns.
func Identity(a, b []byte, mask []bool) float64 {
	if len(a) != len(b) {
		return 0
	}
	var shared, same int
	for i := range a {
		if mask != nil && i < len(mask) && !mask[i] {
			continue
		}
		if NonResidue(a[i]) || NonResidue(b[i]) {
			continue
		}
		shared++
		if Up(a[i]) == Up(b[i]) {
			same++
		}
	}
	if shared == 0 {
		return 0
	}
	return float64(same) / float64(shared)
}
