// Package nfa compiles syntax trees into programs for the backtracking VM.
//
// A program is a Thompson-style NFA laid out as a flat instruction array:
// Char consumes one byte, Split forks into two continuations, Jump transfers
// control and Match accepts. Addresses are indices into the array.
package nfa

import (
	"fmt"
	"strings"
)

// InstID is the address of an instruction within a program.
type InstID uint32

// InstOp identifies the type of an instruction and determines which
// operands are valid.
type InstOp uint8

const (
	// InstChar consumes one input byte equal to C, then continues at the
	// next address.
	InstChar InstOp = iota + 1

	// InstMatch accepts.
	InstMatch

	// InstJump continues at X.
	InstJump

	// InstSplit continues at X and, if that fails, at Y.
	InstSplit
)

// String returns a human-readable representation of the InstOp
func (op InstOp) String() string {
	switch op {
	case InstChar:
		return "char"
	case InstMatch:
		return "match"
	case InstJump:
		return "jmp"
	case InstSplit:
		return "split"
	default:
		return fmt.Sprintf("op(%d)", op)
	}
}

// Inst is a single instruction.
type Inst struct {
	Op InstOp
	C  byte   // InstChar
	X  InstID // InstJump target, InstSplit preferred target
	Y  InstID // InstSplit alternative target
}

// String returns a human-readable representation of the instruction
func (i Inst) String() string {
	switch i.Op {
	case InstChar:
		if i.C >= 0x20 && i.C < 0x7f {
			return fmt.Sprintf("char %q", i.C)
		}
		return fmt.Sprintf("char 0x%02x", i.C)
	case InstMatch:
		return "match"
	case InstJump:
		return fmt.Sprintf("jmp %d", i.X)
	case InstSplit:
		return fmt.Sprintf("split %d, %d", i.X, i.Y)
	default:
		return i.Op.String()
	}
}

// CharInst returns a Char instruction.
func CharInst(c byte) Inst { return Inst{Op: InstChar, C: c} }

// MatchInst returns a Match instruction.
func MatchInst() Inst { return Inst{Op: InstMatch} }

// JumpInst returns a Jump instruction.
func JumpInst(x InstID) Inst { return Inst{Op: InstJump, X: x} }

// SplitInst returns a Split instruction.
func SplitInst(x, y InstID) Inst { return Inst{Op: InstSplit, X: x, Y: y} }

// Prog is a compiled program. It is immutable once returned by the
// compiler and may be shared between goroutines.
type Prog struct {
	insts []Inst
}

// NewProg wraps an instruction slice as a program without validating it.
// The slice is copied. Programs built this way may be malformed; the VM
// reports such programs with evaluation errors rather than panicking.
func NewProg(insts []Inst) *Prog {
	cp := make([]Inst, len(insts))
	copy(cp, insts)
	return &Prog{insts: cp}
}

// Len returns the number of instructions.
func (p *Prog) Len() int {
	return len(p.insts)
}

// Inst returns the instruction at id.
// The second result is false if id is out of range.
func (p *Prog) Inst(id InstID) (Inst, bool) {
	if int64(id) >= int64(len(p.insts)) {
		return Inst{}, false
	}
	return p.insts[id], true
}

// Insts returns a copy of the instruction array.
func (p *Prog) Insts() []Inst {
	cp := make([]Inst, len(p.insts))
	copy(cp, p.insts)
	return cp
}

// Contains reports whether id addresses an instruction of p.
func (p *Prog) Contains(id InstID) bool {
	return int64(id) < int64(len(p.insts))
}

// String returns a disassembly listing, one instruction per line.
func (p *Prog) String() string {
	var b strings.Builder
	for i, inst := range p.insts {
		fmt.Fprintf(&b, "%d: %s\n", i, inst)
	}
	return b.String()
}
