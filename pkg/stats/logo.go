// 20 Feb 2025

package stats

import (
	"math"
	"sort"
)

// LogoMode picks how stack heights are laid out.
type LogoMode byte

const (
	// BitScore scales each stack by its information content relative
	// to the most informative column.
	BitScore LogoMode = iota
	// Probability gives every stack the full height and splits it by
	// residue frequency.
	Probability
)

// Letter is one letter in a stack. Height is the fraction of the full
// available stack height this letter occupies.
type Letter struct {
	AA     byte
	Height float64
}

// LogoColumn is one column of a sequence logo. Letters are ordered
// smallest first, so a renderer drawing from the bottom up puts the
// biggest letter on top.
type LogoColumn struct {
	Bits    float64 // information content, >= 0
	Letters []Letter
}

// Logo lays out the letter stacks for every column.
//
// In BitScore mode a column's information content is the sum of
// freq*log2(freq/background) over residues whose own term is
// positive. Negative terms are left out of both the sum and the
// stack, which keeps every stack non-negative. The column with the
// most information gets the full height and the rest scale with it.
//
// In Probability mode the stack always takes the full height and each
// letter gets its frequency, re-normalised so the heights in a column
// sum to exactly 1 whatever floating point round-off did.
func Logo(fm *FreqMatrix, mode LogoMode) []LogoColumn {
	cols := make([]LogoColumn, fm.ncol)

	switch mode {
	case BitScore:
		contribs := make([][]Letter, fm.ncol)
		maxBits := 0.0
		for icol := 0; icol < fm.ncol; icol++ {
			for irow := 0; irow < NAA; irow++ {
				f := fm.at(irow, icol)
				if f == 0 {
					continue
				}
				aa := CanonicalAA[irow]
				c := f * math.Log2(f/Background(aa))
				if c <= 0 {
					continue
				}
				contribs[icol] = append(contribs[icol], Letter{AA: aa, Height: c})
				cols[icol].Bits += c
			}
			if cols[icol].Bits > maxBits {
				maxBits = cols[icol].Bits
			}
		}
		for icol := range cols {
			if maxBits == 0 {
				continue // nothing informative anywhere, all stacks empty
			}
			// A letter's height is its share of the column's bits,
			// inside a stack scaled by bits/maxBits.
			for _, c := range contribs[icol] {
				cols[icol].Letters = append(cols[icol].Letters,
					Letter{AA: c.AA, Height: c.Height / maxBits})
			}
			sortLetters(cols[icol].Letters)
		}

	case Probability:
		for icol := 0; icol < fm.ncol; icol++ {
			sum := 0.0
			for irow := 0; irow < NAA; irow++ {
				sum += fm.at(irow, icol)
			}
			if sum == 0 {
				continue
			}
			for irow := 0; irow < NAA; irow++ {
				f := fm.at(irow, icol)
				if f == 0 {
					continue
				}
				cols[icol].Letters = append(cols[icol].Letters,
					Letter{AA: CanonicalAA[irow], Height: f / sum})
			}
			sortLetters(cols[icol].Letters)
		}
	}
	return cols
}

// sortLetters orders a stack smallest height first. Ties keep
// alphabetical order so the layout is deterministic.
func sortLetters(ls []Letter) {
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].Height != ls[j].Height {
			return ls[i].Height < ls[j].Height
		}
		return ls[i].AA < ls[j].AA
	})
}
