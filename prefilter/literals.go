package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyre/literal"
)

// ErrNoLiterals is returned by NewLiteralSet for an empty sequence.
var ErrNoLiterals = errors.New("prefilter: no literals")

// LiteralSet searches for any literal of an exact literal set using an
// Aho-Corasick automaton. Since the set is exactly the language of the
// pattern, a hit is a match.
type LiteralSet struct {
	auto   *ahocorasick.Automaton
	count  int
	minLen int
}

// NewLiteralSet builds the automaton for seq.
func NewLiteralSet(seq *literal.Seq) (*LiteralSet, error) {
	if seq.IsEmpty() {
		return nil, ErrNoLiterals
	}
	builder := ahocorasick.NewBuilder()
	litCount := seq.Len()
	for i := 0; i < litCount; i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{auto: auto, count: litCount, minLen: seq.MinLen()}, nil
}

// Find implements Prefilter. It returns the start of the first literal
// occurrence the automaton completes at or after start, which is not
// necessarily the leftmost one. Use it to decide whether a match exists.
func (p *LiteralSet) Find(haystack []byte, start int) int {
	if start < 0 || len(haystack)-start < p.minLen {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.
func (p *LiteralSet) IsComplete() bool {
	return true
}

// MinLen returns the length of the shortest literal. Inputs shorter than
// this are rejected without running the automaton.
func (p *LiteralSet) MinLen() int {
	return p.minLen
}

// Len returns the number of literals in the automaton.
func (p *LiteralSet) Len() int {
	return p.count
}
