// Package prefilter provides fast candidate filtering for regex search.
//
// A prefilter is used to quickly reject positions in the haystack that cannot
// possibly begin a match. The backtracker is then started only at the
// candidate positions instead of at every offset.
//
// Two prefilters are available:
//   - ByteSet: the bytes that can begin a match (from nfa.FirstBytes)
//   - LiteralSet: an exact finite literal set (from literal.Extract),
//     searched with an Aho-Corasick automaton
//
// Example usage:
//
//	prog, _ := nfa.Compile(syntax.MustParse("(x|y)z*"))
//	pf := prefilter.NewByteSet(nfa.FirstBytes(prog))
//	pos := pf.Find([]byte("abcyzz"), 0)
//	// pos == 3
package prefilter

// Prefilter is used to quickly find candidate match positions before running
// the full regex engine.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// 'start', or -1 if no candidate is found.
	//
	// A candidate does NOT guarantee a full match unless IsComplete is true;
	// the caller verifies it with the backtracker.
	//
	// Parameters:
	//   haystack - the byte buffer to search
	//   start - the starting position (must be >= 0 and <= len(haystack))
	Find(haystack []byte, start int) int

	// IsComplete returns true if a prefilter match guarantees a full regex match.
	// A complete prefilter answers whether a match exists on its own.
	IsComplete() bool
}
