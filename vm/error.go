package vm

import "fmt"

// ErrorCode identifies a class of evaluation failure. None of them is
// caused by ordinary non-matching input.
// ErrorCode implements error so callers can test for a class with errors.Is.
type ErrorCode uint8

const (
	// ErrPCOverflow indicates the program counter could not be advanced.
	ErrPCOverflow ErrorCode = iota + 1

	// ErrSPOverflow indicates the input offset could not be advanced.
	ErrSPOverflow

	// ErrInvalidPC indicates a Jump or Split target outside the program.
	ErrInvalidPC

	// ErrInvalidContext indicates a state the VM cannot interpret, such as
	// running past the end of the program or an unknown opcode.
	ErrInvalidContext

	// ErrStepLimit indicates the configured step budget was exhausted.
	ErrStepLimit
)

// Error implements the error interface
func (c ErrorCode) Error() string {
	switch c {
	case ErrPCOverflow:
		return "program counter overflow"
	case ErrSPOverflow:
		return "string pointer overflow"
	case ErrInvalidPC:
		return "control transfer outside the program"
	case ErrInvalidContext:
		return "invalid evaluation context"
	case ErrStepLimit:
		return "step limit exceeded"
	default:
		return fmt.Sprintf("unknown evaluation error %d", uint8(c))
	}
}

// EvalError describes an evaluation failure.
type EvalError struct {
	Code ErrorCode
	PC   uint32 // instruction being dispatched
	SP   int    // input offset at the time
}

// Error implements the error interface
func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation failed at pc %d, sp %d: %v", e.PC, e.SP, e.Code)
}

// Unwrap returns the error class
func (e *EvalError) Unwrap() error {
	return e.Code
}
