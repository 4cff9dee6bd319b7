package syntax

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			&Error{Code: ErrInvalidEscape, Pos: 1, Char: 'x'},
			`error parsing pattern: invalid escape sequence: 'x' at position 1`,
		},
		{
			&Error{Code: ErrInvalidRightParen, Pos: 0},
			`error parsing pattern: unexpected ) at position 0`,
		},
		{
			&Error{Code: ErrNoPrev, Pos: 4},
			`error parsing pattern: missing argument to repetition or alternation operator at position 4`,
		},
		{
			&Error{Code: ErrNoRightParen, Pos: -1},
			`error parsing pattern: missing closing )`,
		},
		{
			&Error{Code: ErrEmpty, Pos: -1},
			`error parsing pattern: empty pattern`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code.Error(), func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, err := Parse("a)")
	if !errors.Is(err, ErrInvalidRightParen) {
		t.Errorf("errors.Is(%v, ErrInvalidRightParen) = false", err)
	}
	if errors.Is(err, ErrNoPrev) {
		t.Errorf("errors.Is(%v, ErrNoPrev) = true", err)
	}
}

func TestErrorCodeUnknown(t *testing.T) {
	if got := ErrorCode(200).Error(); got != "unknown syntax error 200" {
		t.Errorf("ErrorCode(200).Error() = %q", got)
	}
}
