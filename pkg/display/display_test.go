package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
)

func mustParse(t *testing.T, in string) *msa.Alignment {
	t.Helper()
	aln, err := msa.Parse([]byte(in), msa.Fasta)
	require.NoError(t, err)
	return aln
}

func names(d *display.Displayed) []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Seq.Name()
	}
	return out
}

func TestQueryAlwaysSurvives(t *testing.T) {
	aln := mustParse(t, ">q\nACGT\n>s1\nTTTT\n")
	d := display.Build(aln, &display.FilterConfig{MinCoverage: 1, MinIdentity: 1})
	require.Len(t, d.Rows, 1)
	assert.Equal(t, "q", d.Rows[0].Seq.Name())
	assert.Equal(t, 0, d.QueryNdx)
}

func TestFilteredSetIsSubset(t *testing.T) {
	aln := mustParse(t, ">q\nACGTACGTAC\n>s1\nACGTACGTAC\n>s2\nACGT------\n>s3\nTTTTTTTTTT\n")
	d := display.Build(aln, &display.FilterConfig{MinCoverage: 0.5, MinIdentity: 0.5})
	got := names(d)
	assert.Contains(t, got, "q")
	assert.Contains(t, got, "s1")
	// s2 fails coverage (0.4), s3 fails identity (0.0)
	assert.NotContains(t, got, "s2")
	assert.NotContains(t, got, "s3")
}

// TestInclusiveBoundary pins the >= comparison: a sequence sitting
// exactly on the threshold stays.
func TestInclusiveBoundary(t *testing.T) {
	aln := mustParse(t, ">q\nAAAAAAAAAA\n>s1\nAAAAAAAAA-\n")
	d := display.Build(aln, &display.FilterConfig{MinCoverage: 0.9})
	assert.Contains(t, names(d), "s1", "coverage exactly 0.9 must be kept")

	d = display.Build(aln, &display.FilterConfig{MinCoverage: 0.91})
	assert.NotContains(t, names(d), "s1")
}

func TestSortStability(t *testing.T) {
	// s1 and s2 have identical identity; their file order must
	// survive the sort. s3 is better and moves up. The query stays
	// first whatever its scores.
	in := ">q\nAAAAAAAA\n>s1\nAAAACCCC\n>s2\nAAAAGGGG\n>s3\nAAAAAAAC\n"
	aln := mustParse(t, in)
	d := display.Build(aln, &display.FilterConfig{SortEnabled: true})
	assert.Equal(t, []string{"q", "s3", "s1", "s2"}, names(d))
}

func TestNoSortKeepsAlignmentOrder(t *testing.T) {
	in := ">q\nAAAAAAAA\n>s1\nAAAACCCC\n>s2\nAAAAAAAC\n"
	aln := mustParse(t, in)
	d := display.Build(aln, &display.FilterConfig{})
	// The raw alignment already had its initial sort, so s2 leads.
	assert.Equal(t, []string{"q", "s2", "s1"}, names(d))
}

func TestSelectionMaskAbsent(t *testing.T) {
	mask := display.BuildSelectionMask(nil, 4)
	assert.Equal(t, []bool{true, true, true, true}, mask)

	cfg := &display.FilterConfig{}
	assert.Equal(t, mask, display.BuildSelectionMask(cfg, 4),
		"nil selection must behave like every column selected")
}

func TestSelectionMaskHideAll(t *testing.T) {
	cfg := &display.FilterConfig{SelectedCols: map[string][]int{}}
	mask := display.BuildSelectionMask(cfg, 3)
	assert.Equal(t, []bool{false, false, false}, mask)
}

func TestSelectionMaskChains(t *testing.T) {
	cfg := &display.FilterConfig{
		SelectedCols: map[string][]int{"A": {0, 2}, "B": {1}},
		ActiveChains: []string{"A"},
	}
	assert.Equal(t, []bool{true, false, true, false},
		display.BuildSelectionMask(cfg, 4))

	// No active-chain restriction: every chain counts, OR-ed.
	cfg.ActiveChains = nil
	assert.Equal(t, []bool{true, true, true, false},
		display.BuildSelectionMask(cfg, 4))

	// Out of range columns are ignored, not a panic.
	cfg.SelectedCols["A"] = append(cfg.SelectedCols["A"], -1, 99)
	assert.NotPanics(t, func() { display.BuildSelectionMask(cfg, 4) })
}

// TestMaskNeverFilters pins the first-class design decision: the
// selection mask dims columns, it never decides which sequences live.
func TestMaskNeverFilters(t *testing.T) {
	in := ">q\nAAAAAAAAAA\n>s1\nAAAAA-----\n"
	aln := mustParse(t, in)

	open := display.Build(aln, &display.FilterConfig{MinCoverage: 0.5})
	hidden := display.Build(aln, &display.FilterConfig{
		MinCoverage:  0.5,
		SelectedCols: map[string][]int{}, // hide-all state
	})
	assert.Equal(t, names(open), names(hidden),
		"the mask must not change which sequences survive")
	assert.Equal(t, []bool{false, false, false, false, false,
		false, false, false, false, false}, hidden.Mask)

	// And the scores on the rows ignore the mask too.
	require.Len(t, hidden.Rows, 2)
	assert.InDelta(t, 0.5, hidden.Rows[1].Coverage, 1e-12)
}

func TestResNumsCarried(t *testing.T) {
	aln := mustParse(t, ">q\nACGT\n")
	nums := []int{10, 11, 12, 13}
	d := display.Build(aln, &display.FilterConfig{ResNums: nums})
	assert.Equal(t, nums, d.ResNums)
	d = display.Build(aln, &display.FilterConfig{})
	assert.Nil(t, d.ResNums)
}
