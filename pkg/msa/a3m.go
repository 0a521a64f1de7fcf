// 13 Feb 2025

package msa

import (
	"strings"

	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

// stripInserts removes the lower case characters from an a3m record.
// Lower case marks insertions relative to the match states, so what
// is left is exactly the match-state width.
func stripInserts(s []byte) []byte {
	n := 0
	for _, c := range s {
		if c < 'a' || c > 'z' {
			s[n] = c
			n++
		}
	}
	return s[:n]
}

// parseA3M reads a3m text. The query is the first record whose header
// contains "query", any case, or failing that the first record. After
// the insertions are stripped all records should have the same
// length; we do not check, that is the producer's problem.
func parseA3M(buf []byte) (*Alignment, error) {
	recs := fastaRecords(buf)
	if len(recs) == 0 {
		return nil, ErrNoSequences
	}

	queryNdx := 0
	for i, rec := range recs {
		if strings.Contains(strings.ToLower(rec.name), "query") {
			queryNdx = i
			break
		}
	}

	seqs := make([]Seq, len(recs))
	for i, rec := range recs {
		res := stripInserts(rec.res)
		for j, c := range res {
			res[j] = Up(c)
		}
		seqs[i] = Seq{name: rec.name, res: res}
	}
	if seqs[queryNdx].Empty() {
		return nil, ErrEmptyQuery
	}
	return finish(seqs, queryNdx), nil
}
