// 25 Feb 2025

// Package pdbchain is a deliberately small reader for old-style PDB
// coordinate files. It only wants the chains: one-letter residues and
// the author's residue numbers, which is all the selection mapper
// needs from a structure. It reads CA atoms from the first model and
// ignores everything else in the file.
package pdbchain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Chain is one chain's residues with their numbers from the file.
// The numbers are labels, not indices. Do not do arithmetic on them.
type Chain struct {
	ChainID string
	Res     []byte
	NumLbl  []int
}

// File is the set of chains from one PDB file.
type File struct {
	chains map[string]*Chain
	order  []string
}

var ErrNoChain = errors.New("no such chain")
var ErrNoFrame = errors.New("no such frame")

// three2one maps PDB residue names to one-letter codes. Anything not
// in here comes out as the unknown code.
var three2one = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"MSE": 'M', "SEC": 'U', "PYL": 'O',
}

// Read slurps the chains out of a PDB file. We stop at the end of the
// first model, take only CA atoms and skip alternate locations other
// than "A". HETATM records count too when the residue name is one we
// can translate, since modified residues like selenomethionine sit in
// the chain as HETATM in older files.
func Read(rdr io.Reader) (*File, error) {
	f := &File{chains: make(map[string]*Chain)}
	lastICode := make(map[string]byte)
	scnnr := bufio.NewScanner(rdr)
	for scnnr.Scan() {
		line := scnnr.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break // first model only
		}
		isAtom := strings.HasPrefix(line, "ATOM")
		isHet := strings.HasPrefix(line, "HETATM")
		if (!isAtom && !isHet) || len(line) < 27 {
			continue
		}
		if name := line[12:16]; name != " CA " {
			continue
		}
		if alt := line[16]; alt != ' ' && alt != 'A' {
			continue
		}
		resName := strings.TrimSpace(line[17:20])
		c, known := three2one[resName]
		if !known {
			if isHet {
				continue // a ligand or ion, not part of the chain
			}
			c = 'X'
		}
		chainID := string(line[21])
		resNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			continue // mangled residue number, skip the atom
		}
		iCode := line[26]

		chn, ok := f.chains[chainID]
		if !ok {
			chn = &Chain{ChainID: chainID}
			f.chains[chainID] = chn
			f.order = append(f.order, chainID)
		}
		if n := len(chn.NumLbl); n > 0 &&
			chn.NumLbl[n-1] == resNum && lastICode[chainID] == iCode {
			continue // second CA for the same residue
		}
		chn.Res = append(chn.Res, c)
		chn.NumLbl = append(chn.NumLbl, resNum)
		lastICode[chainID] = iCode
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(f.order) == 0 {
		return nil, fmt.Errorf("no chains with CA atoms found")
	}
	return f, nil
}

// ReadFile reads the chains from a named PDB file.
func ReadFile(fname string) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

// ChainNames returns the chain identifiers in file order.
func (f *File) ChainNames() []string { return f.order }

// ChainResidues satisfies the structmap.Provider interface. We only
// ever read the first model, so the only frame on offer is 0.
func (f *File) ChainResidues(chainID string, frame int) ([]byte, []int, error) {
	if frame != 0 {
		return nil, nil, ErrNoFrame
	}
	chn, ok := f.chains[chainID]
	if !ok {
		return nil, nil, ErrNoChain
	}
	return chn.Res, chn.NumLbl, nil
}
