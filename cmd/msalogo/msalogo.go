// 6 Mar 2025
// Read a multiple sequence alignment and draw a sequence logo as png.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/msaview/pkg/logopng"
	. "github.com/andrew-torda/msaview/pkg/msa/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-ttf font.ttf [flags] [infile [outfile]]")
	flag.PrintDefaults()
}

func main() {
	var flags logopng.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Format, "fmt", "fasta", "input format: a3m, fasta or stockholm")
	flag.StringVar(&flags.FontFile, "ttf", "", "ttf font for the letters (required)")
	flag.BoolVar(&flags.Prob, "p", false, "probability mode, full-height stacks")
	flag.Float64Var(&flags.MinCov, "c", 0, "minimum coverage before statistics")
	flag.Float64Var(&flags.MinId, "i", 0, "minimum identity before statistics")
	flag.IntVar(&flags.ColWidth, "w", 0, "pixels per column")
	flag.IntVar(&flags.Height, "ht", 0, "pixels for a full stack")
	flag.Usage = usage
	flag.Parse()
	if flags.FontFile == "" {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := logopng.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
