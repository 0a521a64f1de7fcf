// 19 Feb 2025

// Package stats computes the per-column numbers: residue frequencies,
// log-odds against a fixed background, Shannon entropy and the
// letter stacks for a sequence logo. Everything is computed over the
// currently displayed sequences, so a caller must throw these away
// and recompute whenever the displayed alignment changes. The session
// package does exactly that.
package stats

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/msaview/pkg/display"
)

// CanonicalAA is the twenty residues we count. Anything else,
// gaps included, stays out of both numerator and denominator.
const CanonicalAA = "ACDEFGHIKLMNPQRSTVWY"

const NAA = 20

// background is the natural occurrence rate of each residue,
// swissprot composition. Log-odds for a residue missing from this
// table fall back on a flat 1/20.
var background = map[byte]float64{
	'A': 0.0825, 'R': 0.0553, 'N': 0.0406, 'D': 0.0545, 'C': 0.0137,
	'Q': 0.0393, 'E': 0.0675, 'G': 0.0707, 'H': 0.0227, 'I': 0.0596,
	'L': 0.0966, 'K': 0.0584, 'M': 0.0242, 'F': 0.0386, 'P': 0.0470,
	'S': 0.0656, 'T': 0.0534, 'W': 0.0108, 'Y': 0.0292, 'V': 0.0687,
}

// Background returns the background frequency for a residue, 1/20 if
// we have no table entry.
func Background(aa byte) float64 {
	if f, ok := background[aa]; ok {
		return f
	}
	return 1.0 / NAA
}

// aaNdx maps a residue to its row in the count matrix, -1 for
// anything we do not count.
var aaNdx [256]int8

func init() {
	for i := range aaNdx {
		aaNdx[i] = -1
	}
	for i := 0; i < NAA; i++ {
		aaNdx[CanonicalAA[i]] = int8(i)
		aaNdx[CanonicalAA[i]+'a'-'A'] = int8(i)
	}
}

// FreqMatrix holds the per-column residue tallies for one displayed
// alignment. The counts sit in a 20 x ncol float matrix, rows in
// CanonicalAA order. Counts are integers and stay exact in a float32;
// normalisation happens on the way out, in float64, so frequencies at
// a column sum to 1 to far better than the 1e-9 everyone downstream
// assumes.
type FreqMatrix struct {
	counts *matrix.FMatrix2d
	total  []float32 // residues counted at each column
	ncol   int
}

// CountFreqs tallies the displayed sequences into a frequency matrix.
func CountFreqs(d *display.Displayed) *FreqMatrix {
	fm := &FreqMatrix{
		counts: matrix.NewFMatrix2d(NAA, d.QueryLen),
		total:  make([]float32, d.QueryLen),
		ncol:   d.QueryLen,
	}
	for _, row := range d.Rows {
		s := row.Seq.GetSeq()
		for i := 0; i < len(s) && i < fm.ncol; i++ {
			if n := aaNdx[s[i]]; n >= 0 {
				fm.counts.Mat[n][i]++
				fm.total[i]++
			}
		}
	}
	return fm
}

// at returns the frequency of matrix row irow at a column.
func (fm *FreqMatrix) at(irow, icol int) float64 {
	if fm.total[icol] == 0 {
		return 0
	}
	return float64(fm.counts.Mat[irow][icol]) / float64(fm.total[icol])
}

// NCol returns the number of columns.
func (fm *FreqMatrix) NCol() int { return fm.ncol }

// NCounted returns how many residues were counted at a column.
func (fm *FreqMatrix) NCounted(col int) int { return int(fm.total[col]) }

// At returns the frequency of one residue at one column, 0 for a
// residue outside the canonical twenty.
func (fm *FreqMatrix) At(col int, aa byte) float64 {
	n := aaNdx[aa]
	if n < 0 {
		return 0
	}
	return fm.at(int(n), col)
}

// Col returns the frequency mapping for a column, residues with zero
// frequency left out. A column where nothing was counted gives an
// empty map, not an error.
func (fm *FreqMatrix) Col(col int) map[byte]float64 {
	m := make(map[byte]float64)
	for irow := 0; irow < NAA; irow++ {
		if f := fm.at(irow, col); f > 0 {
			m[CanonicalAA[irow]] = f
		}
	}
	return m
}

// LogOdds returns log2(freq/background) for every residue present at
// a column. Zero-frequency residues are absent from the result, so
// the logarithm is never fed a zero.
func (fm *FreqMatrix) LogOdds(col int) map[byte]float64 {
	m := make(map[byte]float64)
	for irow := 0; irow < NAA; irow++ {
		f := fm.at(irow, col)
		if f == 0 {
			continue
		}
		aa := CanonicalAA[irow]
		m[aa] = math.Log2(f / Background(aa))
	}
	return m
}

// Entropy returns the Shannon entropy of each column, normalised by
// log2(20) so the answer always lies in [0,1]. An empty column has
// entropy 0.
func (fm *FreqMatrix) Entropy() []float64 {
	norm := 1.0 / math.Log2(NAA)
	entropy := make([]float64, fm.ncol)
	for icol := 0; icol < fm.ncol; icol++ {
		total := 0.0
		for irow := 0; irow < NAA; irow++ {
			f := fm.at(irow, icol)
			if f == 0 {
				continue
			}
			total += f * math.Log2(f)
		}
		entropy[icol] = math.Abs(total) * norm
	}
	return entropy
}
