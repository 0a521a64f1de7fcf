// 3 Mar 2025
// Read an alignment, run the filter pipeline and write out what
// survived, either as fasta or as a csv summary of the scores.

package msafilter

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
)

// CmdFlag is literally the command line flags after parsing.
type CmdFlag struct {
	Format  string  // a3m, fasta or stockholm
	Config  string  // optional yaml file with a FilterConfig
	MinCov  float64 // coverage threshold, inclusive
	MinId   float64 // identity threshold, inclusive
	Sort    bool    // sort by identity, query first
	CSV     bool    // write a csv score summary instead of fasta
	RmvGaps bool    // remove gaps when writing fasta
}

// readConfig fills a FilterConfig from a yaml file. Flags already
// parsed stay as defaults for anything the file does not mention.
func readConfig(fname string, cfg *display.FilterConfig) error {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("filter config: %w", err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return fmt.Errorf("filter config %s: %w", fname, err)
	}
	return nil
}

// wrtCSV writes one line per surviving sequence with its scores.
func wrtCSV(fp io.Writer, d *display.Displayed) error {
	if _, err := fmt.Fprintln(fp, `"name","identity","coverage"`); err != nil {
		return err
	}
	for _, r := range d.Rows {
		if _, err := fmt.Fprintf(fp, "%q,%.4f,%.4f\n",
			r.Seq.Name(), r.Identity, r.Coverage); err != nil {
			return err
		}
	}
	return nil
}

// Mymain is the real main. Read, filter, write.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	format, err := msa.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	aln, err := msa.Readfile(infile, format)
	if err != nil {
		return fmt.Errorf("fail reading sequences: %w", err)
	}

	cfg := display.FilterConfig{
		MinCoverage: flags.MinCov,
		MinIdentity: flags.MinId,
		SortEnabled: flags.Sort,
	}
	if flags.Config != "" {
		if err := readConfig(flags.Config, &cfg); err != nil {
			return err
		}
	}
	d := display.Build(aln, &cfg)

	var fp io.WriteCloser = os.Stdout
	if outfile != "" && outfile != "-" {
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}

	if flags.CSV {
		return wrtCSV(fp, d)
	}
	seqs := make([]msa.Seq, len(d.Rows))
	for i, r := range d.Rows {
		seqs[i] = r.Seq
	}
	return msa.WriteFasta(fp, seqs, flags.RmvGaps)
}
