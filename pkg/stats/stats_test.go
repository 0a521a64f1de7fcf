package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
	"github.com/andrew-torda/msaview/pkg/stats"
)

func displayed(t *testing.T, in string) *display.Displayed {
	t.Helper()
	aln, err := msa.Parse([]byte(in), msa.Fasta)
	require.NoError(t, err)
	return display.Build(aln, &display.FilterConfig{})
}

func TestFreqCounts(t *testing.T) {
	d := displayed(t, ">q\nAAAA\n>s1\nACAA\n>s2\nAGA-\n")
	fm := stats.CountFreqs(d)
	require.Equal(t, 4, fm.NCol())

	assert.Equal(t, 3, fm.NCounted(0))
	assert.Equal(t, 2, fm.NCounted(3), "a gap must not be counted")

	assert.Equal(t, 1.0, fm.At(0, 'A'))
	assert.InDelta(t, 1.0/3.0, fm.At(1, 'C'), 1e-12)
	assert.Equal(t, fm.At(1, 'c'), fm.At(1, 'C'), "lookups are case blind")
	assert.Equal(t, 0.0, fm.At(1, 'X'), "non-canonical residues have no frequency")
}

// TestFreqSums checks the property everything downstream leans on:
// frequencies at a column sum to 1 very tightly, even at awkward
// divisors like 3 and 7.
func TestFreqSums(t *testing.T) {
	in := ">q\nAA\n>s1\nCA\n>s2\nGA\n>s3\nDC\n>s4\nEC\n>s5\nFG\n>s6\nHG\n"
	fm := stats.CountFreqs(displayed(t, in))
	for col := 0; col < fm.NCol(); col++ {
		sum := 0.0
		for _, f := range fm.Col(col) {
			sum += f
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "column %d", col)
	}
}

func TestFreqEmptyColumn(t *testing.T) {
	// X keeps the column alive through parsing but is never counted,
	// so the column is empty for statistics.
	d := displayed(t, ">q\nAX\n>s1\nAX\n")
	fm := stats.CountFreqs(d)
	require.Equal(t, 2, fm.NCol())
	assert.Equal(t, 0, fm.NCounted(1))
	assert.Empty(t, fm.Col(1))
	assert.Empty(t, fm.LogOdds(1))
	assert.Equal(t, 0.0, fm.Entropy()[1], "an empty column has entropy 0")
}

func TestLogOdds(t *testing.T) {
	d := displayed(t, ">q\nAC\n>s1\nAG\n")
	fm := stats.CountFreqs(d)

	lo := fm.LogOdds(0)
	require.Len(t, lo, 1)
	assert.InDelta(t, math.Log2(1.0/stats.Background('A')), lo['A'], 1e-12)

	lo = fm.LogOdds(1)
	require.Len(t, lo, 2)
	assert.InDelta(t, math.Log2(0.5/stats.Background('C')), lo['C'], 1e-12)
	assert.InDelta(t, math.Log2(0.5/stats.Background('G')), lo['G'], 1e-12)
}

func TestEntropy(t *testing.T) {
	in := ">q\nAA\n>s1\nAC\n>s2\nAG\n>s3\nAD\n"
	fm := stats.CountFreqs(displayed(t, in))
	ent := fm.Entropy()
	require.Len(t, ent, 2)

	assert.Equal(t, 0.0, ent[0], "a perfectly conserved column has entropy 0")
	// Four residues, uniform: log2(4)/log2(20).
	assert.InDelta(t, 2.0/math.Log2(20), ent[1], 1e-12)
	for _, e := range ent {
		assert.GreaterOrEqual(t, e, 0.0)
		assert.LessOrEqual(t, e, 1.0)
	}
}

func TestBackgroundFallback(t *testing.T) {
	assert.Equal(t, 1.0/20.0, stats.Background('Z'))
	assert.Equal(t, 0.0825, stats.Background('A'))
}
