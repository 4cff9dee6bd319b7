package prefilter

import (
	"bytes"

	"golang.org/x/sys/cpu"

	"github.com/coregx/tinyre/nfa"
)

// hasVectorByteSearch indicates whether bytes.IndexByte runs vectorized on
// this CPU. When it does, a few IndexByte calls beat a scalar table scan.
var hasVectorByteSearch = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// maxNeedles is the largest set searched with one IndexByte per member.
const maxNeedles = 3

// ByteSet finds offsets holding a byte that can begin a match.
type ByteSet struct {
	table   [256]bool
	needles []byte
	// useIndex selects per-needle IndexByte over the table scan.
	useIndex bool
}

// NewByteSet builds a prefilter from a first-byte set.
// Returns nil if set is nil or cannot reject any offset.
func NewByteSet(set *nfa.FirstByteSet) *ByteSet {
	if set == nil || !set.IsUseful() {
		return nil
	}
	return newByteSet(set.Bytes(), hasVectorByteSearch)
}

func newByteSet(needles []byte, vector bool) *ByteSet {
	p := &ByteSet{needles: needles}
	for _, b := range needles {
		p.table[b] = true
	}
	switch {
	case len(needles) == 1:
		p.useIndex = true
	case len(needles) <= maxNeedles:
		p.useIndex = vector
	}
	return p
}

// Find implements Prefilter.
func (p *ByteSet) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if p.useIndex {
		return p.findIndex(haystack, start)
	}
	for i := start; i < len(haystack); i++ {
		if p.table[haystack[i]] {
			return i
		}
	}
	return -1
}

func (p *ByteSet) findIndex(haystack []byte, start int) int {
	window := haystack[start:]
	best := -1
	for _, b := range p.needles {
		// Members found later than best are not needed.
		if best >= 0 {
			window = window[:best]
		}
		if i := bytes.IndexByte(window, b); i >= 0 {
			best = i
		}
	}
	if best < 0 {
		return -1
	}
	return start + best
}

// IsComplete implements Prefilter. A first byte is only a candidate.
func (p *ByteSet) IsComplete() bool {
	return false
}

// Bytes returns the bytes searched for.
func (p *ByteSet) Bytes() []byte {
	return append([]byte(nil), p.needles...)
}
