// 27 Feb 2025

// Package session owns the mutable state the rest of the module
// refuses to have: the current filter configuration, the displayed
// alignment it produces and the derived statistics. There are no
// package-level variables here. A caller makes a Session, passes it
// around and throws it away. Each derived structure is cached against
// the identity of the displayed alignment that produced it, so a
// config change invalidates everything at once simply by producing a
// new Displayed.
package session

import (
	"github.com/andrew-torda/msaview/pkg/coverage"
	"github.com/andrew-torda/msaview/pkg/display"
	"github.com/andrew-torda/msaview/pkg/msa"
	"github.com/andrew-torda/msaview/pkg/stats"
	"github.com/andrew-torda/msaview/pkg/structmap"
)

// Session ties one raw alignment to one filter config and caches what
// is derived from them. Not safe for concurrent use; make one per
// caller.
type Session struct {
	aln  *msa.Alignment
	cfg  display.FilterConfig
	disp *display.Displayed

	freqs    *stats.FreqMatrix
	freqsFor *display.Displayed

	entropy    []float64
	entropyFor *display.Displayed

	logo    map[stats.LogoMode][]stats.LogoColumn
	logoFor *display.Displayed

	covds    *coverage.Dataset
	covdsFor *display.Displayed
}

// New builds a session and runs the pipeline once.
func New(aln *msa.Alignment, cfg display.FilterConfig) *Session {
	s := &Session{aln: aln, cfg: cfg}
	s.disp = display.Build(aln, &s.cfg)
	return s
}

// Alignment returns the raw alignment. It is read-only.
func (s *Session) Alignment() *msa.Alignment { return s.aln }

// Config returns the current filter configuration.
func (s *Session) Config() display.FilterConfig { return s.cfg }

// SetConfig swaps in a new configuration and reruns the whole
// pipeline. There is no incremental path. The old displayed alignment
// is dropped, which is what invalidates every cache.
func (s *Session) SetConfig(cfg display.FilterConfig) {
	s.cfg = cfg
	s.disp = display.Build(s.aln, &s.cfg)
}

// AnnotateResNums attaches a residue number map from the selection
// mapper and reruns the pipeline so the view model carries it. The
// mapping is always against our own query; there is no way to hand in
// a different one.
func (s *Session) AnnotateResNums(p structmap.Provider, chainID string, frame int) {
	s.cfg.ResNums = structmap.ResNumMap(s.aln.Query(), p, chainID, frame)
	s.disp = display.Build(s.aln, &s.cfg)
}

// Displayed returns the current view model.
func (s *Session) Displayed() *display.Displayed { return s.disp }

// Freqs returns the frequency matrix for the current displayed
// alignment, computing it at most once per Displayed.
func (s *Session) Freqs() *stats.FreqMatrix {
	if s.freqsFor != s.disp {
		s.freqs = stats.CountFreqs(s.disp)
		s.freqsFor = s.disp
	}
	return s.freqs
}

// Entropy returns normalised per-column entropy, cached the same way.
func (s *Session) Entropy() []float64 {
	if s.entropyFor != s.disp {
		s.entropy = s.Freqs().Entropy()
		s.entropyFor = s.disp
	}
	return s.entropy
}

// Logo returns the logo stacks for one mode, cached per mode.
func (s *Session) Logo(mode stats.LogoMode) []stats.LogoColumn {
	if s.logoFor != s.disp {
		s.logo = make(map[stats.LogoMode][]stats.LogoColumn)
		s.logoFor = s.disp
	}
	if _, ok := s.logo[mode]; !ok {
		s.logo[mode] = stats.Logo(s.Freqs(), mode)
	}
	return s.logo[mode]
}

// CoverageData returns the coverage dataset, cached against the
// displayed alignment it came from.
func (s *Session) CoverageData() *coverage.Dataset {
	if s.covdsFor != s.disp {
		s.covds = coverage.Build(s.disp)
		s.covdsFor = s.disp
	}
	return s.covds
}
