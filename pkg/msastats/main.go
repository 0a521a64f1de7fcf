// 4 Mar 2025
// Read an alignment, filter it and write the per-column statistics
// as csv: entropy, residue coverage, the commonest residue and the
// information content used for logo layout.

package msastats

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
	"github.com/andrew-torda/msaview/pkg/session"
	"github.com/andrew-torda/msaview/pkg/stats"
)

// CmdFlag is the command line flags after parsing.
type CmdFlag struct {
	Format string  // a3m, fasta or stockholm
	MinCov float64 // coverage threshold for the pipeline
	MinId  float64 // identity threshold for the pipeline
	Offset int     // add this to position numbering on output
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// topResidue finds the commonest residue at a column and its
// frequency. A column with nothing counted gives a gap and 0.
func topResidue(fm *stats.FreqMatrix, col int) (byte, float64) {
	best, bestF := byte('-'), 0.0
	for aa, f := range fm.Col(col) {
		if f > bestF || (f == bestF && aa < best) {
			best, bestF = aa, f
		}
	}
	return best, bestF
}

// wrtStats writes the csv. One line per column.
func wrtStats(fp io.Writer, s *session.Session, offset int) error {
	headings := `"pos","entropy","n residues","top","top frac","bits"`
	if _, err := fmt.Fprintln(fp, headings); err != nil {
		return err
	}
	fm := s.Freqs()
	entropy := s.Entropy()
	logo := s.Logo(stats.BitScore)
	covds := s.CoverageData()
	for i := 0; i < fm.NCol(); i++ {
		top, topF := topResidue(fm, i)
		_, err := fmt.Fprintf(fp, "%d,%.3f,%d,%c,%.3f,%.3f\n",
			i+1+offset, entropy[i], covds.PerPos[i], top, topF, logo[i].Bits)
		if err != nil {
			return err
		}
	}
	return nil
}

// Mymain is the main function for the statistics output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	format, err := msa.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	aln, err := msa.Readfile(infile, format)
	if err != nil {
		return fmt.Errorf("fail reading sequences: %w", err)
	}
	s := session.New(aln, display.FilterConfig{
		MinCoverage: flags.MinCov,
		MinIdentity: flags.MinId,
	})

	var fp io.WriteCloser = os.Stdout
	if outfile != "" && outfile != "-" {
		warnExists(outfile)
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}
	return wrtStats(fp, s, flags.Offset)
}
