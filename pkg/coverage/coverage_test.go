package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/msaview/pkg/coverage"
	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
)

func displayed(t *testing.T, in string, cfg *display.FilterConfig) *display.Displayed {
	t.Helper()
	aln, err := msa.Parse([]byte(in), msa.Fasta)
	require.NoError(t, err)
	return display.Build(aln, cfg)
}

func rowNames(ds *coverage.Dataset) []string {
	out := make([]string, len(ds.Rows))
	for i, r := range ds.Rows {
		out[i] = r.Seq.Name()
	}
	return out
}

func TestPerPos(t *testing.T) {
	d := displayed(t, ">q\nACGT\n>s1\nAC-T\n>s2\nA--X\n", &display.FilterConfig{})
	ds := coverage.Build(d)
	assert.Equal(t, []int{3, 2, 1, 2}, ds.PerPos, "X counts as no residue")
	assert.Equal(t, 4, ds.QueryLen)
}

// TestMaskedRanking is where the mask matters: unlike the filter
// pipeline, the ranking identity here is computed over the selected
// columns only.
func TestMaskedRanking(t *testing.T) {
	// Over all columns s1 and s2 tie at 0.5. Restricted to columns 2
	// and 3, where s1 disagrees with the query and s2 matches it, s2
	// wins outright.
	in := ">q\nAAAA\n>s1\nAAGC\n>s2\nCCAA\n"
	cfg := &display.FilterConfig{
		SelectedCols: map[string][]int{"A": {2, 3}},
	}
	ds := coverage.Build(displayed(t, in, cfg))
	assert.Equal(t, []string{"q", "s2", "s1"}, rowNames(ds))
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, 1.0, ds.Rows[1].Identity)

	// The unmasked view ranks the other way round.
	ds = coverage.Build(displayed(t, in, &display.FilterConfig{}))
	assert.Equal(t, []string{"q", "s1", "s2"}, rowNames(ds))
}

func TestQueryFirstAndTies(t *testing.T) {
	// s1 and s2 tie, so they keep the displayed order.
	in := ">q\nAAAA\n>s1\nAAGG\n>s2\nAACC\n"
	ds := coverage.Build(displayed(t, in, &display.FilterConfig{}))
	assert.Equal(t, []string{"q", "s1", "s2"}, rowNames(ds))
	assert.Equal(t, 1.0, ds.Rows[0].Identity, "query ranks first even without the best score")
}

func TestResNumsPassedThrough(t *testing.T) {
	nums := []int{3, 4, 5, 6}
	ds := coverage.Build(displayed(t, ">q\nACGT\n", &display.FilterConfig{ResNums: nums}))
	assert.Equal(t, nums, ds.ResNums)
}
