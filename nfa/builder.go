package nfa

import "github.com/coregx/tinyre/internal/conv"

// Builder accumulates instructions. Forward references are emitted with a
// placeholder target and patched later by address, so no instruction is
// ever mutated through an aliased pointer.
type Builder struct {
	insts []Inst
	pc    InstID // next free address, always len(insts)
}

// NewBuilder creates a new builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{insts: make([]Inst, 0, capacity)}
}

// PC returns the address the next instruction will occupy.
func (b *Builder) PC() InstID {
	return b.pc
}

// Emit appends inst and returns its address. It fails with ErrPCOverflow
// if the address space is exhausted.
func (b *Builder) Emit(inst Inst) (InstID, error) {
	at := b.pc
	next, ok := conv.AddUint32(uint32(b.pc), 1)
	if !ok {
		return at, &CompileError{Code: ErrPCOverflow, PC: at}
	}
	b.insts = append(b.insts, inst)
	b.pc = InstID(next)
	return at, nil
}

// Next returns the address after the next free one, that is pc+1, failing
// with ErrPCOverflow if it does not exist.
func (b *Builder) Next() (InstID, error) {
	next, ok := conv.AddUint32(uint32(b.pc), 1)
	if !ok {
		return b.pc, &CompileError{Code: ErrPCOverflow, PC: b.pc}
	}
	return InstID(next), nil
}

// PatchSplit sets the alternative target of the Split at address at.
// It reports false if there is no Split at that address.
func (b *Builder) PatchSplit(at, target InstID) bool {
	if int64(at) >= int64(len(b.insts)) || b.insts[at].Op != InstSplit {
		return false
	}
	b.insts[at].Y = target
	return true
}

// PatchJump sets the target of the Jump at address at.
// It reports false if there is no Jump at that address.
func (b *Builder) PatchJump(at, target InstID) bool {
	if int64(at) >= int64(len(b.insts)) || b.insts[at].Op != InstJump {
		return false
	}
	b.insts[at].X = target
	return true
}

// Build returns the program. The builder must not be used afterwards.
func (b *Builder) Build() *Prog {
	prog := &Prog{insts: b.insts}
	b.insts = nil
	return prog
}
