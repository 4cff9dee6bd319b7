// Package sparse provides a sparse set of instruction IDs.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of members for iteration. The program analyses use it
// to visit every instruction of an epsilon closure exactly once.
package sparse

import "github.com/coregx/tinyre/internal/conv"

// Set is a set of uint32 values drawn from [0, capacity).
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32
}

// New creates a set able to hold values in [0, capacity).
// Panics if capacity is negative or does not fit in uint32.
func New(capacity int) *Set {
	n := conv.IntToUint32(capacity)
	return &Set{
		sparse: make([]uint32, n),
		dense:  make([]uint32, 0, n),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Values outside the capacity are never added.
func (s *Set) Insert(value uint32) bool {
	if int64(value) >= int64(len(s.sparse)) || s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if int64(value) >= int64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all elements in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
