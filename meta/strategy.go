package meta

import (
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/syntax"
)

// Strategy represents the execution strategy for IsMatch.
//
// Strategy selection is automatic based on pattern analysis. Every
// strategy gives the same answer as running the backtracker at every
// offset; they differ only in how much work they skip.
type Strategy int

const (
	// UseBacktrack runs the backtracker at every offset.
	// Selected when no cheaper strategy applies.
	UseBacktrack Strategy = iota

	// UseEmpty answers IsMatch with true without looking at the input.
	// Selected when the pattern matches the empty string, which occurs at
	// offset 0 of every input.
	UseEmpty

	// UseLiterals answers IsMatch with an Aho-Corasick automaton.
	// Selected when the pattern denotes a finite set of at least
	// MinLiterals and at most MaxLiterals strings.
	UseLiterals

	// UseFirstByte runs the backtracker only at offsets holding a byte
	// that can begin a match.
	UseFirstByte
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "UseBacktrack"
	case UseEmpty:
		return "UseEmpty"
	case UseLiterals:
		return "UseLiterals"
	case UseFirstByte:
		return "UseFirstByte"
	default:
		return "Unknown"
	}
}

// analysis holds what strategy selection learned about a pattern.
type analysis struct {
	strategy  Strategy
	literals  *literal.Seq
	firstByte *nfa.FirstByteSet
}

// SelectStrategy chooses the execution strategy for a compiled pattern.
//
// Selection order:
//  1. The literal set holds "" or the program matches the empty string → UseEmpty
//  2. The pattern is a finite literal set → UseLiterals
//  3. The first-byte set rejects some bytes → UseFirstByte
//  4. Otherwise → UseBacktrack
func SelectStrategy(ast *syntax.Node, prog *nfa.Prog, config Config) Strategy {
	return analyze(ast, prog, config).strategy
}

func analyze(ast *syntax.Node, prog *nfa.Prog, config Config) analysis {
	var a analysis
	if config.EnablePrefilter {
		a.firstByte = nfa.FirstBytes(prog)
	}

	var seq *literal.Seq
	if config.EnableLiteralEngine {
		seq, _ = literal.Extract(ast, config.MaxLiterals)
	}

	// An empty literal matches at offset 0. CanMatchEmpty also covers the
	// infinite languages the literal extractor gives up on, such as a*.
	if seq.HasEmpty() || nfa.CanMatchEmpty(prog) {
		a.strategy = UseEmpty
		return a
	}

	if seq != nil && seq.Len() >= config.MinLiterals {
		a.strategy = UseLiterals
		a.literals = seq
		return a
	}

	if a.firstByte != nil && a.firstByte.IsUseful() {
		a.strategy = UseFirstByte
		return a
	}

	a.strategy = UseBacktrack
	return a
}
