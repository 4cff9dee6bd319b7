// Package tinyre provides a small backtracking regular expression engine.
//
// The pattern language has literal bytes, grouping with (), alternation
// with |, the postfix quantifiers *, + and ?, and backslash escapes for
// the metacharacters \ ( ) | + * ?. There are no character classes,
// anchors or captures. Matching is byte oriented and unanchored: a
// pattern matches an input if it matches any substring of it.
//
// Patterns are parsed into a syntax tree (package syntax), compiled to a
// four-instruction program (package nfa) and executed by a backtracking
// interpreter (package vm). Package meta picks the cheapest way to run a
// program: a constant answer for patterns matching the empty string,
// Aho-Corasick for finite literal sets, or the backtracker behind a
// first-byte prefilter.
//
// Basic usage:
//
//	re, err := tinyre.Compile("x(ab)*y")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.MatchString("xababy")) // true
//
// Advanced usage:
//
//	// Bound the work done per search
//	config := tinyre.DefaultConfig()
//	config.MaxSteps = 1_000_000
//	re, err := tinyre.CompileWithConfig("(a|b)*c", config)
package tinyre

import (
	"github.com/coregx/tinyre/meta"
	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/syntax"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := tinyre.MustCompile("hello")
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a regular expression pattern.
//
// Returns an error if the pattern is invalid; errors.Is reports the
// syntax.ErrorCode or nfa.ErrorCode behind it.
//
// Example:
//
//	re, err := tinyre.Compile("ab+c")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyre: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.EnableLiteralEngine = false // always run the backtracker
//	re, err := tinyre.CompileWithConfig("foo|bar", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match compiles pattern and reports whether it matches anywhere in text.
// More complex queries should use Compile and the Regex methods.
func Match(pattern, text string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.IsMatch([]byte(text))
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal text.
//
// Example:
//
//	escaped := tinyre.QuoteMeta("a+b")
//	// escaped = `a\+b`
func QuoteMeta(s string) string {
	const special = `\()|+*?`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// IsMatch reports whether b contains any match of the pattern.
// The error is non-nil only if evaluation failed, for example when the
// configured step budget ran out.
func (r *Regex) IsMatch(b []byte) (bool, error) {
	return r.engine.IsMatch(b)
}

// Match reports whether the byte slice b contains any match of the pattern.
// An evaluation failure is reported as no match; use IsMatch to see it.
func (r *Regex) Match(b []byte) bool {
	ok, err := r.engine.IsMatch(b)
	return err == nil && ok
}

// MatchString reports whether the string s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. The match itself is at b[loc[0]:loc[1]].
// Returns nil if no match is found or evaluation failed.
//
// The end of the match is the first one the left-biased search reaches,
// not the longest: for "a|ab" on "ab" it is 1.
func (r *Regex) FindIndex(b []byte) []int {
	loc, err := r.engine.FindIndex(b)
	if err != nil {
		return nil
	}
	return loc
}

// FindString returns the text of the leftmost match in s.
// Returns an empty string if no match is found.
func (r *Regex) FindString(s string) string {
	loc := r.FindIndex([]byte(s))
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// AST returns the parsed syntax tree, for inspection.
func (r *Regex) AST() *syntax.Node {
	return r.engine.AST()
}

// Prog returns the compiled program, for inspection.
func (r *Regex) Prog() *nfa.Prog {
	return r.engine.Prog()
}

// Strategy returns the execution strategy selected for the pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
