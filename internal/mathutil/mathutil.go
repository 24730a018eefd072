// Package mathutil contains saturating and checked int64 arithmetic.
package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

// AbsInt64 returns |val|. For math.MinInt64 the result wraps to math.MinInt64,
// but uint64(AbsInt64(val)) is always the exact magnitude.
func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// SameSign returns true if a and b are both negative or both non-negative.
func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

// Int64Sign returns -1, 0 or 1.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// SatAdd64 returns a+b, or math.MaxInt64/math.MinInt64 if the sum overflows.
func SatAdd64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

// SatSub64 returns a-b, or math.MaxInt64/math.MinInt64 if the difference overflows.
func SatSub64(a, b int64) int64 {
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	if b > 0 && a < math.MinInt64+b {
		return math.MinInt64
	}
	return a - b
}

// SatMul64 returns a*b, or math.MaxInt64/math.MinInt64 if the product overflows.
func SatMul64(a, b int64) int64 {
	if p, ok := CheckedMul64(a, b); ok {
		return p
	}
	if SameSign(a, b) {
		return math.MaxInt64
	}
	return math.MinInt64
}

// SatDiv64 returns a/b truncated towards zero.
// The only overflowing case, math.MinInt64 / -1, returns math.MaxInt64.
// If b == 0, SatDiv64 panics.
func SatDiv64(a, b int64) int64 {
	if b == 0 {
		panic("division by zero")
	}
	if a == math.MinInt64 && b == -1 {
		return math.MaxInt64
	}
	return a / b
}

// CheckedAdd64 returns a+b and true, or false if the sum overflows.
func CheckedAdd64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b || b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

// CheckedSub64 returns a-b and true, or false if the difference overflows.
func CheckedSub64(a, b int64) (int64, bool) {
	if b < 0 && a > math.MaxInt64+b || b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	return a - b, true
}

// CheckedMul64 returns a*b and true, or false if the product overflows.
func CheckedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(AbsInt64(a)), uint64(AbsInt64(b)))
	if hi != 0 {
		return 0, false
	}
	if SameSign(a, b) {
		if lo > math.MaxInt64 {
			return 0, false
		}
		return int64(lo), true
	}
	// the magnitude of a negative product may reach 1<<63.
	if lo > 1<<63 {
		return 0, false
	}
	return int64(-lo), true
}

// CheckedDiv64 returns a/b and true, or false if b == 0 or the quotient overflows.
func CheckedDiv64(a, b int64) (int64, bool) {
	if b == 0 || a == math.MinInt64 && b == -1 {
		return 0, false
	}
	return a / b, true
}
