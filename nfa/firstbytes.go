package nfa

import "github.com/coregx/tinyre/internal/sparse"

// FirstByteSet represents the set of bytes that can start a match.
// Used to skip start offsets that cannot begin a match.
type FirstByteSet struct {
	// bytes is a 256-entry lookup table for O(1) membership test
	bytes [256]bool
	// count is the number of valid first bytes (0-256)
	count int
}

// Contains returns true if b can be the first byte of a match.
func (f *FirstByteSet) Contains(b byte) bool {
	return f.bytes[b]
}

// Count returns the number of possible first bytes.
func (f *FirstByteSet) Count() int {
	return f.count
}

// Bytes returns the members in increasing order.
func (f *FirstByteSet) Bytes() []byte {
	out := make([]byte, 0, f.count)
	for i := 0; i < 256; i++ {
		if f.bytes[i] {
			out = append(out, byte(i))
		}
	}
	return out
}

// IsUseful returns true if this set can reject start offsets, i.e. it is
// neither empty nor all 256 bytes.
func (f *FirstByteSet) IsUseful() bool {
	return f.count > 0 && f.count < 256
}

func (f *FirstByteSet) add(b byte) {
	if !f.bytes[b] {
		f.bytes[b] = true
		f.count++
	}
}

// FirstBytes computes the bytes that can begin a match of prog by walking
// the epsilon closure of address 0 through Split and Jump.
//
// Returns nil if a Match is reachable without consuming input (the program
// matches the empty string, so every offset is a candidate) or if the
// closure leaves the program.
func FirstBytes(prog *Prog) *FirstByteSet {
	result := &FirstByteSet{}
	ok := walkClosure(prog, func(inst Inst) bool {
		if inst.Op == InstChar {
			result.add(inst.C)
			return true
		}
		return false
	})
	if !ok {
		return nil
	}
	return result
}

// CanMatchEmpty reports whether prog accepts without consuming input.
func CanMatchEmpty(prog *Prog) bool {
	matched := false
	walkClosure(prog, func(inst Inst) bool {
		if inst.Op == InstMatch {
			matched = true
			return false
		}
		return true
	})
	return matched
}

// walkClosure calls visit for every Char and Match instruction in the
// epsilon closure of address 0, each at most once. It stops and returns
// false as soon as visit returns false, or when the closure reaches an
// address outside the program or an unknown opcode.
func walkClosure(prog *Prog, visit func(Inst) bool) bool {
	if prog.Len() == 0 {
		return false
	}

	seen := sparse.New(prog.Len())
	stack := []InstID{0}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		inst, ok := prog.Inst(id)
		if !ok {
			return false
		}
		if !seen.Insert(uint32(id)) {
			continue
		}

		switch inst.Op {
		case InstChar, InstMatch:
			if !visit(inst) {
				return false
			}
		case InstJump:
			stack = append(stack, inst.X)
		case InstSplit:
			// Order does not matter for a closure.
			stack = append(stack, inst.Y, inst.X)
		default:
			return false
		}
	}
	return true
}
