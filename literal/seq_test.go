package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/tinyre/syntax"
)

func literalStrings(s *Seq) []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = string(s.Get(i).Bytes)
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"a", []string{"a"}},
		{"abc", []string{"abc"}},
		{"foo|bar", []string{"foo", "bar"}},
		{"a|b|c", []string{"a", "b", "c"}},
		{"ba(r|z)", []string{"bar", "baz"}},
		{"(a|b)(c|d)", []string{"ac", "ad", "bc", "bd"}},
		{"ab?c", []string{"abc", "ac"}},
		{"a?", []string{"a", ""}},
		{"a|a", []string{"a"}},
		{`\*x`, []string{"*x"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq, ok := Extract(syntax.MustParse(tt.pattern), 64)
			if !ok {
				t.Fatalf("Extract(%q) failed", tt.pattern)
			}
			if diff := cmp.Diff(tt.want, literalStrings(seq)); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestExtractRejects(t *testing.T) {
	tests := []struct {
		name  string
		ast   *syntax.Node
		limit int
	}{
		{"star", syntax.MustParse("ab*"), 64},
		{"plus", syntax.MustParse("(a|b)+"), 64},
		{"over limit cross", syntax.MustParse("(a|b)(c|d)(e|f)"), 4},
		{"over limit union", syntax.MustParse("a|b|c"), 2},
		{"over limit question", syntax.MustParse("(a|b)?"), 2},
		{"nil", nil, 64},
		{"malformed or", &syntax.Node{Op: syntax.OpOr, Sub: []*syntax.Node{syntax.Char('a')}}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if seq, ok := Extract(tt.ast, tt.limit); ok {
				t.Errorf("Extract() = %v, want failure", seq)
			}
		})
	}
}

func TestSeqHelpers(t *testing.T) {
	seq, ok := Extract(syntax.MustParse("abc|d?"), 64)
	if !ok {
		t.Fatal("Extract failed")
	}

	if !seq.HasEmpty() {
		t.Error("HasEmpty() = false, want true")
	}
	if got := seq.MinLen(); got != 0 {
		t.Errorf("MinLen() = %d, want 0", got)
	}
	if got, want := seq.String(), "Seq[literal{abc}, literal{d}, literal{}]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var empty *Seq
	if !empty.IsEmpty() || empty.HasEmpty() || empty.MinLen() != 0 || empty.String() != "Seq[]" {
		t.Error("nil Seq helpers misbehave")
	}

	lits := NewSeq(NewLiteral([]byte("xy")), NewLiteral([]byte("xyz")))
	if got := lits.MinLen(); got != 2 {
		t.Errorf("MinLen() = %d, want 2", got)
	}
	if got := lits.Get(1).Len(); got != 3 {
		t.Errorf("Get(1).Len() = %d, want 3", got)
	}
}
