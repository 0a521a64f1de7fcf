// 6 Mar 2025

package logopng

import (
	"fmt"
	"os"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
	"github.com/andrew-torda/msaview/pkg/session"
	"github.com/andrew-torda/msaview/pkg/stats"
)

// CmdFlag is the command line flags after parsing.
type CmdFlag struct {
	Format   string  // a3m, fasta or stockholm
	FontFile string  // ttf to set letters with
	Prob     bool    // probability mode rather than bit-score mode
	MinCov   float64 // pipeline coverage threshold
	MinId    float64 // pipeline identity threshold
	ColWidth int
	Height   int
}

// Mymain reads an alignment, filters it and writes a logo png.
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
	mode := stats.BitScore
	if flags.Prob {
		mode = stats.Probability
	}
	img, err := Render(s.Logo(mode), &Options{
		ColWidth: flags.ColWidth, Height: flags.Height,
		FontFile: flags.FontFile,
	})
	if err != nil {
		return err
	}

	fp := os.Stdout
	if outfile != "" && outfile != "-" {
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}
	return WritePNG(fp, img)
}
