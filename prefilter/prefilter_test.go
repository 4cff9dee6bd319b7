package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/syntax"
)

func firstBytes(t *testing.T, pattern string) *nfa.FirstByteSet {
	t.Helper()
	prog, err := nfa.Compile(syntax.MustParse(pattern))
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return nfa.FirstBytes(prog)
}

// naiveFind is the reference: first offset >= start holding a needle.
func naiveFind(needles []byte, haystack []byte, start int) int {
	for i := max(start, 0); i < len(haystack); i++ {
		if strings.IndexByte(string(needles), haystack[i]) >= 0 {
			return i
		}
	}
	return -1
}

func TestByteSetFind(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		start    int
		want     int
	}{
		{"x", "abcx", 0, 3},
		{"x", "abcx", 4, -1},
		{"(x|y)z*", "abcyzz", 0, 3},
		{"(x|y)z*", "xabcy", 1, 4},
		{"a|b|c", "zzzc", 0, 3},
		{"a|b|c|d|e", "zzze", 0, 3},
		{"a|b|c|d|e", "zzzz", 0, -1},
		{"x", "", 0, -1},
		{"x", "x", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := NewByteSet(firstBytes(t, tt.pattern))
			if pf == nil {
				t.Fatal("NewByteSet returned nil")
			}
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.haystack, tt.start, got, tt.want)
			}
			if pf.IsComplete() {
				t.Error("IsComplete() = true, want false")
			}
		})
	}
}

// TestByteSetStrategiesAgree checks the IndexByte and table paths against
// the naive scan regardless of the CPU the test runs on.
func TestByteSetStrategiesAgree(t *testing.T) {
	needleSets := []string{"a", "ab", "abc", "xyz", "abcdef"}
	haystacks := []string{"", "a", "zzzz", "zzcbazz", "cccccccb", strings.Repeat("q", 100) + "f"}

	for _, needles := range needleSets {
		for _, vector := range []bool{false, true} {
			pf := newByteSet([]byte(needles), vector)
			for _, h := range haystacks {
				for start := 0; start <= len(h); start++ {
					want := naiveFind([]byte(needles), []byte(h), start)
					if got := pf.Find([]byte(h), start); got != want {
						t.Errorf("needles %q vector=%v: Find(%q, %d) = %d, want %d",
							needles, vector, h, start, got, want)
					}
				}
			}
		}
	}
}

func TestNewByteSetNotUseful(t *testing.T) {
	if pf := NewByteSet(nil); pf != nil {
		t.Errorf("NewByteSet(nil) = %v, want nil", pf)
	}
	// a* matches the empty string, so there is no first-byte set.
	if pf := NewByteSet(firstBytes(t, "a*")); pf != nil {
		t.Errorf("NewByteSet(a*) = %v, want nil", pf)
	}
}

func TestByteSetBytes(t *testing.T) {
	pf := NewByteSet(firstBytes(t, "c|a|b"))
	if got := string(pf.Bytes()); got != "abc" {
		t.Errorf("Bytes() = %q, want %q", got, "abc")
	}
}

func literalSet(t *testing.T, pattern string) *LiteralSet {
	t.Helper()
	seq, ok := literal.Extract(syntax.MustParse(pattern), 64)
	if !ok {
		t.Fatalf("Extract(%q) failed", pattern)
	}
	pf, err := NewLiteralSet(seq)
	if err != nil {
		t.Fatalf("NewLiteralSet(%q): %v", pattern, err)
	}
	return pf
}

func TestLiteralSetHit(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		want     bool
	}{
		{"foo|bar", "xxbarxx", true},
		{"foo|bar", "fobaxx", false},
		{"ba(r|z)", "bazaar", true},
		{"ba(r|z)", "bay", false},
		{"(a|b)(c|d)", "xbd", true},
		{"abc|abd", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := literalSet(t, tt.pattern)
			if got := pf.Find([]byte(tt.haystack), 0) >= 0; got != tt.want {
				t.Errorf("Find(%q, 0) >= 0 is %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestLiteralSetFind(t *testing.T) {
	pf := literalSet(t, "foo|bar")
	if !pf.IsComplete() {
		t.Error("IsComplete() = false, want true")
	}
	if got := pf.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := pf.Find([]byte("xxxbar"), 0); got != 3 {
		t.Errorf("Find = %d, want 3", got)
	}
	if got := pf.Find([]byte("xxxbar"), 4); got != -1 {
		t.Errorf("Find from 4 = %d, want -1", got)
	}
	if got := pf.Find([]byte("xxx"), 10); got != -1 {
		t.Errorf("Find out of range = %d, want -1", got)
	}
}

func TestLiteralSetMinLen(t *testing.T) {
	pf := literalSet(t, "abc|de")
	if got := pf.MinLen(); got != 2 {
		t.Fatalf("MinLen() = %d, want 2", got)
	}
	if got := pf.Find([]byte("xde"), 2); got != -1 {
		t.Errorf("Find with one byte left = %d, want -1", got)
	}
	if got := pf.Find([]byte("xde"), 1); got != 1 {
		t.Errorf("Find = %d, want 1", got)
	}
}

func TestNewLiteralSetEmpty(t *testing.T) {
	if _, err := NewLiteralSet(literal.NewSeq()); err != ErrNoLiterals {
		t.Errorf("NewLiteralSet(empty) error = %v, want %v", err, ErrNoLiterals)
	}
}

func TestPrefilterInterface(t *testing.T) {
	var _ Prefilter = (*ByteSet)(nil)
	var _ Prefilter = (*LiteralSet)(nil)
}

func BenchmarkByteSetFind(b *testing.B) {
	haystack := []byte(strings.Repeat("abcdefgh", 1024) + "z")
	for _, needles := range []string{"z", "yz", "xyz", "uvwxyz"} {
		pf := newByteSet([]byte(needles), hasVectorByteSearch)
		b.Run(needles, func(b *testing.B) {
			b.SetBytes(int64(len(haystack)))
			for i := 0; i < b.N; i++ {
				_ = pf.Find(haystack, 0)
			}
		})
	}
}
