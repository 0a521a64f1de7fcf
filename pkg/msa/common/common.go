// 11 Feb 2025

// Package common has the few definitions that almost every other
// package wants: what counts as a gap, what counts as a residue,
// exit codes and a helper for writing test files.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	GapChar     byte = '-' // a minus sign is the usual gap
	DotChar     byte = '.' // insert states in stockholm / a2m
	BlankChar   byte = ' '
	UnknownChar byte = 'X' // unknown residue code
)

// gapTable says whether a character is a gap for the purposes of
// anchoring an alignment on its query. The unknown residue code is
// not in here. It is a residue, just not a useful one.
var gapTable = [256]bool{GapChar: true, DotChar: true, BlankChar: true}

// nonResTable is the wider class used by the coverage and identity
// calculations. Gaps, dots, blanks and the unknown code all count
// the same there.
var nonResTable = [256]bool{
	GapChar: true, DotChar: true, BlankChar: true,
	UnknownChar: true, 'x': true,
}

// IsGap says if c is a gap character (minus, dot or blank).
func IsGap(c byte) bool { return gapTable[c] }

// NonResidue says if c should be ignored when counting residues.
// Gaps and the unknown residue code are treated identically.
func NonResidue(c byte) bool { return nonResTable[c] }

// upTable maps lower case sequence characters to upper case and
// leaves everything else alone.
var upTable = [256]byte{}

func init() {
	for i := 0; i < 256; i++ {
		upTable[i] = byte(i)
	}
	for c := byte('a'); c <= 'z'; c++ {
		upTable[c] = c - ('a' - 'A')
	}
}

// Up returns the upper case version of a sequence character.
func Up(c byte) byte { return upTable[c] }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
