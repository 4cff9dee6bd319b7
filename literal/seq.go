// Package literal provides types and operations for representing literal
// byte sequences extracted from syntax trees.
//
// The primary use case is the literal engine: when a pattern denotes a
// finite set of strings (e.g. /foo|ba(r|z)/), searching the input for any
// of those strings gives the same answer as running the full program.
//
// Key concepts:
//   - A Literal is a concrete byte sequence the pattern matches in full
//   - A Seq is a set of alternative literals
package literal

import (
	"strings"

	"github.com/coregx/tinyre/syntax"
)

// Literal represents a byte sequence matched by a pattern.
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello")}
//   - Pattern /ab?/ → Literal{[]byte("ab")} and Literal{[]byte("a")}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte
}

// NewLiteral creates a new Literal from the given byte sequence.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq represents a sequence of alternative literals.
//
// Example:
//
//	seq, ok := literal.Extract(syntax.MustParse("foo|bar"), 64)
//	fmt.Println(ok, seq.Len()) // Output: true 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// HasEmpty reports whether the empty string is one of the literals. A
// pattern whose set holds the empty string matches at every offset.
func (s *Seq) HasEmpty() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if len(lit.Bytes) == 0 {
			return true
		}
	}
	return false
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLen := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		minLen = min(minLen, len(lit.Bytes))
	}
	return minLen
}

// Dedup removes repeated literals, keeping the first occurrence.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	seen := make(map[string]struct{}, len(s.literals))
	out := s.literals[:0]
	for _, lit := range s.literals {
		if _, ok := seen[string(lit.Bytes)]; ok {
			continue
		}
		seen[string(lit.Bytes)] = struct{}{}
		out = append(out, lit)
	}
	s.literals = out
}

// String returns a string representation of the sequence for debugging.
func (s *Seq) String() string {
	if s.IsEmpty() {
		return "Seq[]"
	}
	parts := make([]string, len(s.literals))
	for i, lit := range s.literals {
		parts[i] = lit.String()
	}
	return "Seq[" + strings.Join(parts, ", ") + "]"
}

// Extract computes the exact set of strings matched by ast.
//
// It reports false if the set is infinite (the tree contains Star or
// Plus), if it would hold more than limit literals, or if the tree is
// malformed. Literals keep alternation order and are deduplicated.
func Extract(ast *syntax.Node, limit int) (*Seq, bool) {
	lits, ok := extract(ast, limit)
	if !ok {
		return nil, false
	}
	seq := &Seq{literals: make([]Literal, len(lits))}
	for i, b := range lits {
		seq.literals[i] = NewLiteral(b)
	}
	seq.Dedup()
	return seq, true
}

func extract(n *syntax.Node, limit int) ([][]byte, bool) {
	if n == nil {
		return nil, false
	}

	switch n.Op {
	case syntax.OpChar:
		return [][]byte{{n.Char}}, limit >= 1

	case syntax.OpSeq:
		acc := [][]byte{{}}
		for _, sub := range n.Sub {
			lits, ok := extract(sub, limit)
			if !ok || len(acc)*len(lits) > limit {
				return nil, false
			}
			acc = cross(acc, lits)
		}
		return acc, true

	case syntax.OpOr:
		if len(n.Sub) != 2 {
			return nil, false
		}
		left, ok := extract(n.Sub[0], limit)
		if !ok {
			return nil, false
		}
		right, ok := extract(n.Sub[1], limit)
		if !ok || len(left)+len(right) > limit {
			return nil, false
		}
		return append(left, right...), true

	case syntax.OpQuestion:
		if len(n.Sub) != 1 {
			return nil, false
		}
		lits, ok := extract(n.Sub[0], limit)
		if !ok || len(lits)+1 > limit {
			return nil, false
		}
		return append(lits, []byte{}), true

	default:
		// Star and Plus denote infinite sets.
		return nil, false
	}
}

// cross returns every concatenation p+s with p from prefixes and s from suffixes.
func cross(prefixes, suffixes [][]byte) [][]byte {
	out := make([][]byte, 0, len(prefixes)*len(suffixes))
	for _, p := range prefixes {
		for _, s := range suffixes {
			lit := make([]byte, 0, len(p)+len(s))
			lit = append(lit, p...)
			lit = append(lit, s...)
			out = append(out, lit)
		}
	}
	return out
}
