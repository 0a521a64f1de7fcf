// 26 Feb 2025

// Package coverage builds the secondary dataset a heatmap-style view
// wants: the displayed sequences ranked by identity under the current
// selection mask, plus a per-column count of how many sequences have
// a residue there. It reads the displayed alignment and feeds nothing
// back into the filter pipeline.
package coverage

import (
	"sort"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/metric"
	"github.com/andrew-torda/msaview/pkg/msa"
	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

// Row is one ranked sequence. Unlike the filter pipeline, the
// identity here honours the selection mask.
type Row struct {
	Seq      msa.Seq
	Identity float64
}

// Dataset is the coverage view model. Rows come query first, then by
// identity, ties in the order the displayed alignment had them.
type Dataset struct {
	Rows     []Row
	PerPos   []int // sequences with a residue, per column
	QueryLen int
	ResNums  []int
}

// normalise pads or trims a sequence to exactly n columns.
func normalise(s []byte, n int) []byte {
	if len(s) == n {
		return s
	}
	if len(s) > n {
		return s[:n]
	}
	out := make([]byte, n)
	copy(out, s)
	for i := len(s); i < n; i++ {
		out[i] = GapChar
	}
	return out
}

// Build derives the dataset from a displayed alignment.
func Build(d *display.Displayed) *Dataset {
	ds := &Dataset{
		PerPos:   make([]int, d.QueryLen),
		QueryLen: d.QueryLen,
		ResNums:  d.ResNums,
	}

	rows := make([]Row, len(d.Rows))
	for i, r := range d.Rows {
		s := normalise(r.Seq.GetSeq(), d.QueryLen)
		rows[i] = Row{
			Seq:      msa.NewSeq(r.Seq.Name(), s),
			Identity: metric.Identity(s, d.Query, d.Mask),
		}
		for col, c := range s {
			if !NonResidue(c) {
				ds.PerPos[col]++
			}
		}
	}

	ndx := make([]int, len(rows))
	for i := range ndx {
		ndx[i] = i
	}
	queryNdx := d.QueryNdx
	sort.SliceStable(ndx, func(i, j int) bool {
		a, b := ndx[i], ndx[j]
		if a == queryNdx {
			return b != queryNdx
		}
		if b == queryNdx {
			return false
		}
		return rows[a].Identity > rows[b].Identity
	})
	ds.Rows = make([]Row, len(rows))
	for i, old := range ndx {
		ds.Rows[i] = rows[old]
	}
	return ds
}
