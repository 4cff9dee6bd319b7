package syntax

import "fmt"

// ErrorCode identifies a class of pattern syntax error.
// ErrorCode implements error so callers can test for a class with errors.Is.
type ErrorCode uint8

const (
	// ErrInvalidEscape: a backslash followed by a byte that is not a
	// metacharacter, or a backslash at the end of the pattern.
	ErrInvalidEscape ErrorCode = iota + 1

	// ErrInvalidRightParen: a ) with no matching (.
	ErrInvalidRightParen

	// ErrNoPrev: a quantifier or | with nothing before it.
	ErrNoPrev

	// ErrNoRightParen: a ( that is never closed.
	ErrNoRightParen

	// ErrEmpty: the pattern contributes no nodes at all.
	ErrEmpty
)

// Error implements the error interface
func (c ErrorCode) Error() string {
	switch c {
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidRightParen:
		return "unexpected )"
	case ErrNoPrev:
		return "missing argument to repetition or alternation operator"
	case ErrNoRightParen:
		return "missing closing )"
	case ErrEmpty:
		return "empty pattern"
	default:
		return fmt.Sprintf("unknown syntax error %d", uint8(c))
	}
}

// Error describes a failure to parse a pattern.
type Error struct {
	Code ErrorCode
	Pos  int  // byte offset of the offending byte, -1 if not applicable
	Char byte // offending byte, set for ErrInvalidEscape
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Code == ErrInvalidEscape:
		return fmt.Sprintf("error parsing pattern: %v: %q at position %d", e.Code, e.Char, e.Pos)
	case e.Pos >= 0:
		return fmt.Sprintf("error parsing pattern: %v at position %d", e.Code, e.Pos)
	default:
		return fmt.Sprintf("error parsing pattern: %v", e.Code)
	}
}

// Unwrap returns the error class
func (e *Error) Unwrap() error {
	return e.Code
}
