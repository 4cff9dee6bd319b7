package vm

import (
	"github.com/coregx/tinyre/internal/conv"
	"github.com/coregx/tinyre/nfa"
)

// visitKey identifies a (pc, sp) pair in the sparse visited set.
type visitKey struct {
	pc nfa.InstID
	sp int
}

// state is the per-call scratch space of a Backtracker.
type state struct {
	jobs []job

	// visited is a bit vector over (pc, sp) pairs.
	// Layout: bit at index (pc * stride + sp).
	visited []uint64
	stride  int

	// seen replaces visited when the bit vector would be too large.
	seen map[visitKey]struct{}

	steps int
}

// reset prepares the state for a program of progLen instructions and an
// input of textLen bytes.
func (s *state) reset(progLen, textLen, maxBits int) {
	s.jobs = s.jobs[:0]
	s.steps = 0
	s.stride = textLen + 1

	if progLen > 0 && s.stride > 0 && s.stride <= maxBits/progLen {
		s.seen = nil
		words := (progLen*s.stride + 63) / 64
		if cap(s.visited) >= words {
			s.visited = s.visited[:words]
			clear(s.visited)
		} else {
			s.visited = make([]uint64, words)
		}
		return
	}

	s.visited = s.visited[:0]
	if s.seen == nil {
		s.seen = make(map[visitKey]struct{})
	} else {
		clear(s.seen)
	}
}

// shouldVisit checks if (pc, sp) has been visited and marks it if not.
// Returns true if the pair is new.
func (s *state) shouldVisit(pc nfa.InstID, sp int) bool {
	if s.seen != nil {
		k := visitKey{pc: pc, sp: sp}
		if _, ok := s.seen[k]; ok {
			return false
		}
		s.seen[k] = struct{}{}
		return true
	}

	idx := int(pc)*s.stride + sp
	word := idx / 64
	bit := uint64(1) << (idx % 64)
	if s.visited[word]&bit != 0 {
		return false
	}
	s.visited[word] |= bit
	return true
}

// step counts one dispatched instruction against the budget.
// A budget of zero or less is unlimited.
func (s *state) step(budget int) error {
	next, ok := conv.AddInt(s.steps, 1)
	if !ok {
		return ErrStepLimit
	}
	s.steps = next
	if budget > 0 && s.steps > budget {
		return ErrStepLimit
	}
	return nil
}
