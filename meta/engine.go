package meta

import (
	"sync/atomic"

	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/prefilter"
	"github.com/coregx/tinyre/syntax"
	"github.com/coregx/tinyre/vm"
)

// Engine is a compiled pattern with its selected execution strategy.
//
// Thread safety: an Engine is safe for concurrent use. The backtracker
// pools its scratch space and statistics are updated atomically.
type Engine struct {
	pattern  string
	ast      *syntax.Node
	prog     *nfa.Prog
	config   Config
	strategy Strategy

	bt         *vm.Backtracker
	candidates prefilter.Prefilter // start offsets for the backtracker; nil if disabled or not useful
	literals   prefilter.Prefilter // complete; set for UseLiterals

	stats Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// EmptySearches counts IsMatch calls answered without scanning
	EmptySearches uint64

	// LiteralSearches counts Aho-Corasick searches
	LiteralSearches uint64

	// PrefilterSearches counts searches restricted by the first-byte prefilter
	PrefilterSearches uint64

	// BacktrackSearches counts searches trying every offset
	BacktrackSearches uint64

	// Errors counts evaluations that failed
	Errors uint64
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prog returns the compiled program.
func (e *Engine) Prog() *nfa.Prog {
	return e.prog
}

// AST returns the parsed syntax tree.
func (e *Engine) AST() *syntax.Node {
	return e.ast
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// IsMatch reports whether the pattern matches anywhere in haystack.
//
// The result equals running the backtracker at every offset. One
// exception: UseEmpty answers true even when the step budget would have
// been exhausted first.
func (e *Engine) IsMatch(haystack []byte) (bool, error) {
	switch e.strategy {
	case UseEmpty:
		atomic.AddUint64(&e.stats.EmptySearches, 1)
		return true, nil
	case UseLiterals:
		atomic.AddUint64(&e.stats.LiteralSearches, 1)
		return e.literals.Find(haystack, 0) >= 0, nil
	default:
		start, _, err := e.search(haystack)
		return start >= 0, err
	}
}

// IsMatchString is like IsMatch for a string.
func (e *Engine) IsMatchString(s string) (bool, error) {
	return e.IsMatch([]byte(s))
}

// FindIndex returns the leftmost match as a two-element slice [start, end],
// or nil if there is none. The end is where the left-biased search first
// reached Match, so a|ab on "ab" yields [0, 1].
func (e *Engine) FindIndex(haystack []byte) ([]int, error) {
	start, end, err := e.search(haystack)
	if err != nil || start < 0 {
		return nil, err
	}
	return []int{start, end}, nil
}

// search runs the backtracker, skipping offsets rejected by the
// candidate prefilter when one is available.
func (e *Engine) search(haystack []byte) (start, end int, err error) {
	if e.candidates != nil {
		atomic.AddUint64(&e.stats.PrefilterSearches, 1)
		start, end, err = e.bt.SearchWith(haystack, e.candidates)
	} else {
		atomic.AddUint64(&e.stats.BacktrackSearches, 1)
		start, end, err = e.bt.Search(haystack)
	}
	if err != nil {
		atomic.AddUint64(&e.stats.Errors, 1)
	}
	return start, end, err
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		EmptySearches:     atomic.LoadUint64(&e.stats.EmptySearches),
		LiteralSearches:   atomic.LoadUint64(&e.stats.LiteralSearches),
		PrefilterSearches: atomic.LoadUint64(&e.stats.PrefilterSearches),
		BacktrackSearches: atomic.LoadUint64(&e.stats.BacktrackSearches),
		Errors:            atomic.LoadUint64(&e.stats.Errors),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.EmptySearches, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterSearches, 0)
	atomic.StoreUint64(&e.stats.BacktrackSearches, 0)
	atomic.StoreUint64(&e.stats.Errors, 0)
}
