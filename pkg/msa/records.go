// 12 Feb 2025

package msa

import (
	"bytes"
	"strings"

	. "github.com/andrew-torda/msaview/pkg/msa/common"
	"github.com/andrew-torda/msaview/pkg/white"
)

// record is a parsed header plus raw residue text, before any
// normalisation. The residues are always copied out of the input
// buffer since the input may be a read-only mapping.
type record struct {
	name string
	res  []byte
}

// nextLine peels one line off buf, without the newline.
func nextLine(buf []byte) (line, rest []byte) {
	if n := bytes.IndexByte(buf, '\n'); n >= 0 {
		return buf[:n], buf[n+1:]
	}
	return buf, nil
}

// fastaRecords splits fasta-style text into records. A ">" at the
// start of a line begins a record. Text before the first ">" is
// quietly ignored, as is a record with no residue text at all, which
// shows up later as a padded row rather than an error here.
func fastaRecords(buf []byte) []record {
	var recs []record
	cur := -1
	for len(buf) > 0 {
		var line []byte
		line, buf = nextLine(buf)
		if len(line) > 0 && line[0] == '>' {
			name := strings.TrimSpace(string(line[1:]))
			recs = append(recs, record{name: name})
			cur = len(recs) - 1
			continue
		}
		if cur < 0 {
			continue
		}
		recs[cur].res = append(recs[cur].res, line...)
	}
	for i := range recs {
		white.Remove(&recs[i].res)
	}
	return recs
}

// parseFasta reads plain aligned fasta. The first record is the query
// and the alignment is anchored on its ungapped form.
func parseFasta(buf []byte) (*Alignment, error) {
	return anchorOnQuery(fastaRecords(buf))
}

// anchorOnQuery is the shared back half of the fasta and stockholm
// parsers. The first record is the query. Columns where the original
// query has a gap are deleted from every row, anchoring the alignment
// on the ungapped query. Rows longer than the original query lose
// their tail first; shorter rows act as if gap-padded. Everything is
// upper-cased on the way through.
func anchorOnQuery(recs []record) (*Alignment, error) {
	if len(recs) == 0 {
		return nil, ErrNoSequences
	}
	rawQ := recs[0].res
	var keep []int // columns where the query has a residue
	for i, c := range rawQ {
		if !IsGap(c) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, ErrEmptyQuery
	}

	seqs := make([]Seq, len(recs))
	for i, rec := range recs {
		out := make([]byte, len(keep))
		for j, col := range keep {
			if col < len(rec.res) {
				out[j] = Up(rec.res[col])
			} else {
				out[j] = GapChar
			}
		}
		seqs[i] = Seq{name: rec.name, res: out}
	}
	return finish(seqs, 0), nil
}
