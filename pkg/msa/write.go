// 14 Feb 2025

package msa

import (
	"fmt"
	"io"

	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

// WriteFasta writes sequences in fasta format, sixty characters to a
// line. With rmvGaps set, gap characters are dropped on the way out.
func WriteFasta(fp io.Writer, seqs []Seq, rmvGaps bool) error {
	const c_per_line = 60
	var t []byte
	for _, seq := range seqs {
		if seq.Empty() {
			continue
		}
		if _, err := fmt.Fprintf(fp, ">%s\n", seq.Name()); err != nil {
			return err
		}

		s := seq.GetSeq()
		if rmvGaps {
			n := 0
			for i := range s { //   So we start by looking how many non-gap
				if !IsGap(s[i]) { // characters there are.
					n++
				}
			}
			if cap(t) < n { // See if our scratch space is big enough
				t = make([]byte, n)
			}
			m := 0
			for i := range s {
				if !IsGap(s[i]) {
					t[m] = s[i]
					m++
				}
			}
			s = t[:n]
		}
		for ; len(s) > c_per_line; s = s[c_per_line:] {
			fmt.Fprint(fp, string(s[:c_per_line]), "\n")
		}
		if _, err := fmt.Fprint(fp, string(s), "\n"); err != nil {
			return err
		}
	}
	return nil
}
