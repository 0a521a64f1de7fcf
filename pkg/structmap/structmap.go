// 24 Feb 2025

// Package structmap connects a structure viewer's world of chains and
// residue numbers with alignment columns. The mapping is a plain walk
// along both sequences. We only trust positions where the characters
// agree at the same offset. At the first disagreement we stop and
// leave the rest unmapped. No realignment is attempted, so a query
// with indels relative to the chain will be under-mapped. That is the
// agreed behaviour, not an accident.
package structmap

import (
	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

// NoResNum marks a column with no known structural correspondence.
const NoResNum = -9999

// A Provider hands us, for a chain and frame, the chain's one-letter
// residues and their structural residue numbers. Absence of a chain
// or frame is reported with an error and treated by callers as "no
// annotation", not as a failure.
type Provider interface {
	ChainResidues(chainID string, frame int) (res []byte, resNums []int, err error)
}

// ungapped returns the columns of the query that hold a residue, in
// order. Offset k of the ungapped query lives at column cols[k].
func ungapped(query []byte) (cols []int) {
	for i, c := range query {
		if !IsGap(c) {
			cols = append(cols, i)
		}
	}
	return cols
}

// MapChain builds the residue number map for one chain. The result
// has one entry per alignment column, NoResNum where nothing is
// known. Matching stops at the first offset where the query and chain
// disagree.
func MapChain(query []byte, chainRes []byte, resNums []int) []int {
	out := make([]int, len(query))
	for i := range out {
		out[i] = NoResNum
	}
	cols := ungapped(query)
	for k := 0; k < len(cols) && k < len(chainRes) && k < len(resNums); k++ {
		if Up(query[cols[k]]) != Up(chainRes[k]) {
			break
		}
		out[cols[k]] = resNums[k]
	}
	return out
}

// ResNumMap asks the provider for a chain and maps it onto the query.
// If the provider has nothing for this chain or frame we return nil,
// which callers read as "no residue number annotation".
func ResNumMap(query []byte, p Provider, chainID string, frame int) []int {
	if p == nil {
		return nil
	}
	res, nums, err := p.ChainResidues(chainID, frame)
	if err != nil || len(res) == 0 {
		return nil
	}
	return MapChain(query, res, nums)
}

// ColumnsForResidues inverts the correspondence: given structural
// residue numbers picked in a viewer, return the alignment columns
// they land on. The same stop-at-first-mismatch rule applies, so a
// residue beyond the first mismatch is never mapped.
func ColumnsForResidues(query []byte, chainRes []byte, resNums []int, want []int) []int {
	wanted := make(map[int]bool, len(want))
	for _, r := range want {
		wanted[r] = true
	}
	var out []int
	cols := ungapped(query)
	for k := 0; k < len(cols) && k < len(chainRes) && k < len(resNums); k++ {
		if Up(query[cols[k]]) != Up(chainRes[k]) {
			break
		}
		if wanted[resNums[k]] {
			out = append(out, cols[k])
		}
	}
	return out
}
