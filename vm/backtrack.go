// Package vm executes compiled programs with a backtracking interpreter.
//
// The interpreter explores (pc, sp) pairs depth first: at a Split it tries
// the preferred target and only falls back to the alternative when that
// fails. Backtrack points live on an explicit job stack, so neither loop
// iterations nor alternation nesting consume call stack.
//
// Pairs that have been explored once are remembered. A pair that failed
// fails again, so pruning never changes a result, and it makes programs
// with empty loops such as (a*)* terminate.
package vm

import (
	"sync"

	"github.com/coregx/tinyre/internal/conv"
	"github.com/coregx/tinyre/nfa"
)

// Config controls evaluation limits.
type Config struct {
	// MaxSteps bounds the number of instructions dispatched by one call.
	// Zero means unlimited.
	// Default: 0
	MaxSteps int

	// MaxVisitedBits bounds the dense visited bit vector, which needs
	// len(prog) * (len(input)+1) bits. Larger searches track visited
	// pairs in a map instead.
	// Default: 256 * 1024 * 8 (256KB)
	MaxVisitedBits int
}

// DefaultConfig returns an evaluation configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxSteps:       0,
		MaxVisitedBits: 256 * 1024 * 8,
	}
}

// Scanner yields candidate start offsets for a search.
type Scanner interface {
	// Find returns the first candidate offset >= at, or -1 if none.
	Find(haystack []byte, at int) int
}

// Backtracker runs one program. It is safe for concurrent use; per-call
// scratch space comes from a pool.
type Backtracker struct {
	prog   *nfa.Prog
	config Config
	pool   sync.Pool
}

// New creates a backtracker for prog.
func New(prog *nfa.Prog, config Config) *Backtracker {
	b := &Backtracker{prog: prog, config: config}
	b.pool.New = func() any { return &state{} }
	return b
}

// IsMatch reports whether prog matches anywhere in text, using the
// default configuration.
func IsMatch(prog *nfa.Prog, text []byte) (bool, error) {
	return New(prog, DefaultConfig()).IsMatch(text)
}

// Prog returns the program being executed.
func (b *Backtracker) Prog() *nfa.Prog {
	return b.prog
}

// IsMatch reports whether the program matches a substring of text: the
// program is started at every offset in [0, len(text)] in increasing order
// until one attempt reaches Match.
func (b *Backtracker) IsMatch(text []byte) (bool, error) {
	start, _, err := b.Search(text)
	return start >= 0, err
}

// IsMatchAt reports whether the program matches starting exactly at
// offset at. Offsets outside [0, len(text)] never match.
func (b *Backtracker) IsMatchAt(text []byte, at int) (bool, error) {
	if at < 0 || at > len(text) {
		return false, nil
	}
	st := b.acquire(text)
	defer b.pool.Put(st)

	end, err := b.run(st, text, at)
	return end >= 0, err
}

// Search finds the leftmost offset at which the program matches.
// The end is where the first Match reached by the left-biased search
// lies. Returns (-1, -1, nil) if there is no match.
func (b *Backtracker) Search(text []byte) (start, end int, err error) {
	st := b.acquire(text)
	defer b.pool.Put(st)

	for at := 0; at <= len(text); at++ {
		end, err := b.run(st, text, at)
		if err != nil {
			return -1, -1, err
		}
		if end >= 0 {
			return at, end, nil
		}
	}
	return -1, -1, nil
}

// SearchWith is like Search but only tries offsets reported by scanner.
// The scanner must report every offset at which a match can start.
func (b *Backtracker) SearchWith(text []byte, scanner Scanner) (start, end int, err error) {
	st := b.acquire(text)
	defer b.pool.Put(st)

	for at := 0; at <= len(text); at++ {
		at = scanner.Find(text, at)
		if at < 0 {
			break
		}
		end, err := b.run(st, text, at)
		if err != nil {
			return -1, -1, err
		}
		if end >= 0 {
			return at, end, nil
		}
	}
	return -1, -1, nil
}

// job is a pending backtrack point.
type job struct {
	pc nfa.InstID
	sp int
}

// run evaluates the program from (0, at) and returns the input offset at
// which Match was reached, or -1.
//
//nolint:gocyclo,cyclop // complexity is inherent to instruction dispatch
func (b *Backtracker) run(st *state, text []byte, at int) (int, error) {
	st.jobs = append(st.jobs[:0], job{pc: 0, sp: at})

	for len(st.jobs) > 0 {
		j := st.jobs[len(st.jobs)-1]
		st.jobs = st.jobs[:len(st.jobs)-1]
		pc, sp := j.pc, j.sp

	thread:
		for {
			inst, ok := b.prog.Inst(pc)
			if !ok {
				return -1, &EvalError{Code: ErrInvalidContext, PC: uint32(pc), SP: sp}
			}
			if !st.shouldVisit(pc, sp) {
				break thread
			}
			if err := st.step(b.config.MaxSteps); err != nil {
				return -1, &EvalError{Code: ErrStepLimit, PC: uint32(pc), SP: sp}
			}

			switch inst.Op {
			case nfa.InstChar:
				if sp >= len(text) || text[sp] != inst.C {
					break thread
				}
				nextSP, ok := conv.AddInt(sp, 1)
				if !ok {
					return -1, &EvalError{Code: ErrSPOverflow, PC: uint32(pc), SP: sp}
				}
				nextPC, ok := conv.AddUint32(uint32(pc), 1)
				if !ok {
					return -1, &EvalError{Code: ErrPCOverflow, PC: uint32(pc), SP: sp}
				}
				pc, sp = nfa.InstID(nextPC), nextSP

			case nfa.InstMatch:
				return sp, nil

			case nfa.InstJump:
				if !b.prog.Contains(inst.X) {
					return -1, &EvalError{Code: ErrInvalidPC, PC: uint32(pc), SP: sp}
				}
				pc = inst.X

			case nfa.InstSplit:
				if !b.prog.Contains(inst.X) || !b.prog.Contains(inst.Y) {
					return -1, &EvalError{Code: ErrInvalidPC, PC: uint32(pc), SP: sp}
				}
				st.jobs = append(st.jobs, job{pc: inst.Y, sp: sp})
				pc = inst.X

			default:
				return -1, &EvalError{Code: ErrInvalidContext, PC: uint32(pc), SP: sp}
			}
		}
	}
	return -1, nil
}

// acquire takes scratch state from the pool and prepares it for text.
func (b *Backtracker) acquire(text []byte) *state {
	st := b.pool.Get().(*state)
	st.reset(b.prog.Len(), len(text), b.config.MaxVisitedBits)
	return st
}
