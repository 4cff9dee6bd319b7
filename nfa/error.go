package nfa

import "fmt"

// ErrorCode identifies a class of code generation failure.
// ErrorCode implements error so callers can test for a class with errors.Is.
type ErrorCode uint8

const (
	// ErrPCOverflow indicates the program outgrew the instruction address space.
	ErrPCOverflow ErrorCode = iota + 1

	// ErrFailStar indicates the loop head of a star was not a Split when patched.
	ErrFailStar

	// ErrFailOr indicates a Split or Jump of an alternation was not the
	// expected instruction when patched.
	ErrFailOr

	// ErrFailQuestion indicates the Split of an optional was not a Split when patched.
	ErrFailQuestion

	// ErrTooComplex indicates the tree nests deeper than an explicitly
	// configured CompilerConfig.MaxRecursionDepth. The default has no limit.
	ErrTooComplex

	// ErrInvalidNode indicates a node with an unknown Op or the wrong
	// number of children.
	ErrInvalidNode
)

// Error implements the error interface
func (c ErrorCode) Error() string {
	switch c {
	case ErrPCOverflow:
		return "program counter overflow"
	case ErrFailStar:
		return "star: patch target is not a split"
	case ErrFailOr:
		return "alternation: patch target has unexpected shape"
	case ErrFailQuestion:
		return "question: patch target is not a split"
	case ErrTooComplex:
		return "pattern too complex"
	case ErrInvalidNode:
		return "malformed syntax tree"
	default:
		return fmt.Sprintf("unknown code generation error %d", uint8(c))
	}
}

// CompileError describes a code generation failure.
type CompileError struct {
	Code ErrorCode
	PC   InstID // address being emitted or patched
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("code generation failed at pc %d: %v", e.PC, e.Code)
}

// Unwrap returns the error class
func (e *CompileError) Unwrap() error {
	return e.Code
}
