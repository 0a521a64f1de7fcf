// 4 Mar 2025
// Read a multiple sequence alignment and write per-column statistics
// (entropy, coverage, information content) as csv.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/msaview/pkg/msa/common"
	"github.com/andrew-torda/msaview/pkg/msastats"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	flag.PrintDefaults()
}

func main() {
	var flags msastats.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Format, "fmt", "fasta", "input format: a3m, fasta or stockholm")
	flag.Float64Var(&flags.MinCov, "c", 0, "minimum coverage before statistics")
	flag.Float64Var(&flags.MinId, "i", 0, "minimum identity before statistics")
	flag.IntVar(&flags.Offset, "f", 0, "offset for numbering output, renumbering sites")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := msastats.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
