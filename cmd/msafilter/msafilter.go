// 3 Mar 2025
// Read a multiple sequence alignment, filter it on coverage and
// identity and write out the survivors.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/msaview/pkg/msa/common"
	"github.com/andrew-torda/msaview/pkg/msafilter"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	long := `Do not just type the command name. It will wait on input from stdin.
Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags msafilter.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Format, "fmt", "fasta", "input format: a3m, fasta or stockholm")
	flag.StringVar(&flags.Config, "y", "", "yaml file with a filter configuration")
	flag.Float64Var(&flags.MinCov, "c", 0, "minimum coverage, 0 to 1, inclusive")
	flag.Float64Var(&flags.MinId, "i", 0, "minimum identity to the query, 0 to 1, inclusive")
	flag.BoolVar(&flags.Sort, "s", false, "sort by identity, query first")
	flag.BoolVar(&flags.CSV, "v", false, "write csv scores instead of fasta")
	flag.BoolVar(&flags.RmvGaps, "g", false, "remove gaps on fasta output")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := msafilter.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
