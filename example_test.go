package tinyre_test

import (
	"errors"
	"fmt"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/syntax"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := tinyre.Compile("a(b|c)d")
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("abd"))
	fmt.Println(re.MatchString("axd"))
	// Output:
	// true
	// false
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := tinyre.MustCompile("hello")
	fmt.Println(re.MatchString("say hello world"))
	// Output: true
}

// ExampleMatch demonstrates one-shot matching.
func ExampleMatch() {
	ok, err := tinyre.Match("x(ab)*y", "--xababy--")
	fmt.Println(ok, err)
	// Output: true <nil>
}

// ExampleCompile_error demonstrates inspecting a syntax error.
func ExampleCompile_error() {
	_, err := tinyre.Compile("a|*")
	fmt.Println(errors.Is(err, syntax.ErrNoPrev))
	fmt.Println(err)
	// Output:
	// true
	// error parsing pattern: missing argument to repetition or alternation operator at position 2
}

// ExampleRegex_FindString demonstrates finding the leftmost match.
func ExampleRegex_FindString() {
	re := tinyre.MustCompile("b+")
	fmt.Println(re.FindString("aabbbcc"))
	// Output: bbb
}

// ExampleRegex_FindIndex demonstrates the left-biased end of a match.
func ExampleRegex_FindIndex() {
	re := tinyre.MustCompile("a|ab")
	fmt.Println(re.FindIndex([]byte("ab")))
	// Output: [0 1]
}

// ExampleRegex_Prog demonstrates disassembling a compiled pattern.
func ExampleRegex_Prog() {
	re := tinyre.MustCompile("a*")
	fmt.Print(re.Prog())
	// Output:
	// 0: split 1, 3
	// 1: char 'a'
	// 2: jmp 0
	// 3: match
}

// ExampleRegex_Strategy shows the strategy chosen for a few patterns.
func ExampleRegex_Strategy() {
	for _, pattern := range []string{"a*", "foo|bar", "ab+", "(a|b)*c|x*"} {
		fmt.Println(pattern, tinyre.MustCompile(pattern).Strategy())
	}
	// Output:
	// a* UseEmpty
	// foo|bar UseLiterals
	// ab+ UseFirstByte
	// (a|b)*c|x* UseEmpty
}

// ExampleQuoteMeta demonstrates escaping metacharacters.
func ExampleQuoteMeta() {
	pattern := tinyre.QuoteMeta("1+1=2?")
	fmt.Println(pattern)
	fmt.Println(tinyre.MustCompile(pattern).MatchString("is 1+1=2?"))
	// Output:
	// 1\+1=2\?
	// true
}
