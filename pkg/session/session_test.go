package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
	"github.com/andrew-torda/msaview/pkg/session"
	"github.com/andrew-torda/msaview/pkg/stats"
)

func newSession(t *testing.T, cfg display.FilterConfig) *session.Session {
	t.Helper()
	in := ">q\nACGTACGTAC\n>s1\nACGTACGTAC\n>s2\nACGT------\n"
	aln, err := msa.Parse([]byte(in), msa.Fasta)
	require.NoError(t, err)
	return session.New(aln, cfg)
}

func TestCaching(t *testing.T) {
	s := newSession(t, display.FilterConfig{})

	// Repeated asks must hand back the very same structures.
	assert.Same(t, s.Freqs(), s.Freqs())
	assert.Same(t, s.CoverageData(), s.CoverageData())
	assert.Same(t, s.Displayed(), s.Displayed())

	e1 := s.Entropy()
	e2 := s.Entropy()
	require.NotEmpty(t, e1)
	assert.Same(t, &e1[0], &e2[0], "entropy slice must be cached, not recomputed")

	l1 := s.Logo(stats.BitScore)
	l2 := s.Logo(stats.BitScore)
	require.NotEmpty(t, l1)
	assert.Same(t, &l1[0], &l2[0])
	// The other mode is its own cache entry, not a collision.
	assert.NotEqual(t, l1, s.Logo(stats.Probability))
}

func TestSetConfigInvalidates(t *testing.T) {
	s := newSession(t, display.FilterConfig{})
	oldDisp := s.Displayed()
	oldFreqs := s.Freqs()
	require.Len(t, oldDisp.Rows, 3)

	s.SetConfig(display.FilterConfig{MinCoverage: 0.5})
	assert.NotSame(t, oldDisp, s.Displayed())
	assert.NotSame(t, oldFreqs, s.Freqs())
	assert.Len(t, s.Displayed().Rows, 2, "s2 fails the new coverage cut")
	assert.InDelta(t, 0.5, s.Config().MinCoverage, 1e-12)
}

type oneChain struct{}

func (oneChain) ChainResidues(chainID string, frame int) ([]byte, []int, error) {
	if chainID != "A" || frame != 0 {
		return nil, nil, errors.New("no such chain")
	}
	return []byte("ACGTACGTAC"), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil
}

func TestAnnotateResNums(t *testing.T) {
	s := newSession(t, display.FilterConfig{})
	old := s.Displayed()

	s.AnnotateResNums(oneChain{}, "A", 0)
	d := s.Displayed()
	assert.NotSame(t, old, d, "annotation reruns the pipeline")
	require.Len(t, d.ResNums, 10)
	assert.Equal(t, 1, d.ResNums[0])
	assert.Equal(t, 10, d.ResNums[9])
	assert.Equal(t, d.ResNums, s.CoverageData().ResNums)

	// A chain we do not have clears the annotation instead of failing.
	s.AnnotateResNums(oneChain{}, "B", 0)
	assert.Nil(t, s.Displayed().ResNums)
}
