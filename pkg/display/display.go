// 17 Feb 2025

// Package display turns a raw alignment plus a FilterConfig into the
// view model a renderer consumes. Build is a pure function. There is
// no incremental update: change the config, call Build again. The raw
// alignment is never touched.
package display

import (
	"sort"

	"github.com/andrew-torda/msaview/pkg/metric"
	"github.com/andrew-torda/msaview/pkg/msa"
)

// FilterConfig says which sequences survive and how they are ordered.
// SelectedColumns is keyed by chain id. A nil map means no selection,
// every column visible. A non-nil empty map is the hide-all state.
// A nil ActiveChains means every chain in SelectedColumns counts.
type FilterConfig struct {
	MinCoverage  float64          `yaml:"min_coverage"`
	MinIdentity  float64          `yaml:"min_identity"`
	SortEnabled  bool             `yaml:"sort"`
	SelectedCols map[string][]int `yaml:"selected_columns,omitempty"`
	ActiveChains []string         `yaml:"active_chains,omitempty"`

	// ResNums is an optional per-column structural residue number
	// annotation from the selection mapper. It is carried through to
	// the view model untouched.
	ResNums []int `yaml:"-"`
}

// Row is one displayed sequence with its scores. The scores are
// always computed over the full column range, never the mask.
type Row struct {
	Seq      msa.Seq
	Identity float64
	Coverage float64
}

// Displayed is the filtered, sorted, mask-annotated alignment. It is
// recomputed whenever the config or the raw alignment changes and the
// derived-statistics caches key on its identity.
type Displayed struct {
	Rows     []Row
	Query    []byte
	QueryLen int
	QueryNdx int // row index of the query, always 0
	Mask     []bool
	ResNums  []int // nil when no structural annotation is known
}

// BuildSelectionMask builds the per-column visibility mask. The mask
// only ever drives dimming in a renderer. It never decides which
// sequences survive filtering.
func BuildSelectionMask(cfg *FilterConfig, ncol int) []bool {
	mask := make([]bool, ncol)
	if cfg == nil || cfg.SelectedCols == nil {
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	// Non-nil map: a column is visible if any active chain selected
	// it. The empty map selects nothing, which is the hide-all state.
	chains := cfg.ActiveChains
	if chains == nil {
		chains = make([]string, 0, len(cfg.SelectedCols))
		for c := range cfg.SelectedCols {
			chains = append(chains, c)
		}
	}
	for _, c := range chains {
		for _, col := range cfg.SelectedCols[c] {
			if col >= 0 && col < ncol {
				mask[col] = true
			}
		}
	}
	return mask
}

// Build runs the pipeline: mask, coverage filter, identity filter,
// optional stable sort. The query is exempt from both filters and
// always lands in row 0. Both thresholds are inclusive; a sequence
// sitting exactly on a threshold is kept.
func Build(aln *msa.Alignment, cfg *FilterConfig) *Displayed {
	d := &Displayed{
		Query:    aln.Query(),
		QueryLen: aln.QueryLen(),
		Mask:     BuildSelectionMask(cfg, aln.QueryLen()),
	}
	if cfg != nil {
		d.ResNums = cfg.ResNums
	}

	minCov, minId := 0.0, 0.0
	if cfg != nil {
		minCov, minId = cfg.MinCoverage, cfg.MinIdentity
	}

	queryNdx := aln.QueryNdx()
	for i, s := range aln.SeqSlc() {
		cov := metric.Coverage(s.GetSeq(), aln.QueryLen(), nil)
		id := aln.Identity(i)
		if i != queryNdx {
			if cov < minCov || id < minId {
				continue
			}
		}
		d.Rows = append(d.Rows, Row{Seq: s, Identity: id, Coverage: cov})
	}

	// The query was row queryNdx in the raw alignment, which the
	// initial sort pinned to 0, so it is row 0 here too. The sort
	// below keeps it there no matter what its scores are.
	if cfg != nil && cfg.SortEnabled {
		stableByIdent(d.Rows)
	}
	return d
}

// stableByIdent sorts rows by identity, highest first, query pinned
// to the top, ties keeping their old relative order.
func stableByIdent(rows []Row) {
	if len(rows) < 3 {
		return
	}
	rest := rows[1:] // row 0 is the query and stays put
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Identity > rest[j].Identity
	})
}
