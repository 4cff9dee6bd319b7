// Package conv provides checked integer arithmetic for the regex engine.
//
// Counter increments in the code generator and the evaluator go through the
// Add helpers, which report overflow instead of wrapping. Narrowing
// conversions panic on overflow since that indicates a programming error.
package conv

import "math"

// AddUint32 returns a+b and whether the sum fits in a uint32.
// On overflow the returned sum is 0.
//
//go:inline
func AddUint32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// AddInt returns a+b and whether the sum is representable as an int.
// On overflow the returned sum is 0.
//
//go:inline
func AddInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
