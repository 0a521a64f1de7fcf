// 12 Feb 2025

// Package msa holds a multiple sequence alignment the way the rest of
// the module wants to see it: a slice of equal-length sequences,
// anchored on a query sequence which always sits in the first row.
// The three parsers (a3m, fasta, stockholm) all end up in the same
// place, an Alignment, which is read-only from then on. Everything
// derived (filtering, statistics, coverage) is computed elsewhere and
// never writes back in here.
package msa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/msaview/pkg/metric"
)

// Seq is one named row of an alignment. It is immutable once parsed.
type Seq struct {
	name string
	res  []byte
}

// NewSeq is for tests and for callers that build alignments by hand.
func NewSeq(name string, res []byte) Seq { return Seq{name: name, res: res} }

// Name returns the name from the sequence header.
func (s Seq) Name() string { return s.name }

// GetSeq returns the residues. Callers must not write into the slice.
func (s Seq) GetSeq() []byte { return s.res }

// Len is the number of columns.
func (s Seq) Len() int { return len(s.res) }

// Empty says if there are no residues at all.
func (s Seq) Empty() bool { return len(s.res) == 0 }

// Format says which text format a parser should expect.
type Format byte

const (
	A3M Format = iota
	Fasta
	Stockholm
)

// ParseFormat turns a format tag like "a3m" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "a3m":
		return A3M, nil
	case "fasta":
		return Fasta, nil
	case "stockholm", "sto":
		return Stockholm, nil
	}
	return 0, fmt.Errorf("unknown alignment format %q", s)
}

// Parse failures. Callers check with errors.Is. No partial alignment
// is ever returned next to one of these.
var (
	ErrNoSequences = errors.New("no sequences found")
	ErrEmptyQuery  = errors.New("query sequence is empty")
)

// Alignment is the raw, post-parse alignment. It is the single source
// of truth and does not change after parsing. The initial sort puts
// the query first and the rest in order of identity to the query; the
// pre-sort file order is kept in origNdx for consumers that want it.
type Alignment struct {
	seqs     []Seq
	idents   []float64 // identity to the query, one per row
	origNdx  []int     // origNdx[i] is row i's position in the file
	query    []byte
	queryLen int
	queryNdx int // always 0 after the initial sort
}

// NSeq returns the number of sequences.
func (aln *Alignment) NSeq() int { return len(aln.seqs) }

// SeqSlc returns the slice of sequences, query first.
func (aln *Alignment) SeqSlc() []Seq { return aln.seqs }

// Identity returns row i's identity to the query, computed at parse
// time over the full column range.
func (aln *Alignment) Identity(i int) float64 { return aln.idents[i] }

// OrigNdx returns the position row i had in the input file, before
// the initial sort.
func (aln *Alignment) OrigNdx(i int) int { return aln.origNdx[i] }

// Query returns the resolved query sequence.
func (aln *Alignment) Query() []byte { return aln.query }

// QueryLen is the number of columns. Every row has exactly this many.
func (aln *Alignment) QueryLen() int { return aln.queryLen }

// QueryNdx returns the row index of the query.
func (aln *Alignment) QueryNdx() int { return aln.queryNdx }

// finish does the part shared by all three parsers. It computes each
// row's identity to the query and does the initial stable sort, query
// pinned first, everyone else by identity, ties keeping file order.
func finish(seqs []Seq, queryNdx int) *Alignment {
	query := seqs[queryNdx].res
	idents := make([]float64, len(seqs))
	for i, s := range seqs {
		idents[i] = metric.Identity(s.res, query, nil)
	}

	ndx := make([]int, len(seqs))
	for i := range ndx {
		ndx[i] = i
	}
	sort.SliceStable(ndx, func(i, j int) bool {
		a, b := ndx[i], ndx[j]
		if a == queryNdx {
			return b != queryNdx
		}
		if b == queryNdx {
			return false
		}
		return idents[a] > idents[b]
	})

	aln := &Alignment{
		seqs:     make([]Seq, len(seqs)),
		idents:   make([]float64, len(seqs)),
		origNdx:  make([]int, len(seqs)),
		query:    query,
		queryLen: len(query),
	}
	for i, old := range ndx {
		aln.seqs[i] = seqs[old]
		aln.idents[i] = idents[old]
		aln.origNdx[i] = old
	}
	return aln
}

// Parse turns raw alignment text into an Alignment.
func Parse(buf []byte, format Format) (*Alignment, error) {
	switch format {
	case A3M:
		return parseA3M(buf)
	case Fasta:
		return parseFasta(buf)
	case Stockholm:
		return parseStockholm(buf)
	}
	return nil, fmt.Errorf("unknown alignment format %d", format)
}

// ReadAln slurps a reader and parses it.
func ReadAln(rdr io.Reader, format Format) (*Alignment, error) {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return Parse(buf, format)
}

// Readfile parses an alignment from a file. The file is mapped
// read-only rather than slurped, so the parsers must copy anything
// they keep, which they do anyway since they rewrite every sequence.
// An empty filename means standard input, where we cannot map and
// fall back on reading it all.
func Readfile(fname string, format Format) (*Alignment, error) {
	if fname == "" {
		return ReadAln(os.Stdin, format)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return Parse(mm, format)
}
