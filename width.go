// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width is a storage width of a signed integer in bits.
// Only W8, W16, W32 and W64 are valid widths.
type Width uint8

// Supported widths, from the narrowest to the widest.
const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

var widths = [...]Width{W8, W16, W32, W64}

// Widths returns the width ladder in ascending order.
func Widths() []Width {
	return widths[:]
}

// WidthOf returns the width of a signed integer type T.
func WidthOf[T constraints.Signed]() Width {
	var zero T
	return Width(unsafe.Sizeof(zero) * 8)
}

// ParseWidth parses strings like "i32", "int32" or "32".
func ParseWidth(s string) (Width, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "int"), "i")
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || !Width(n).Valid() {
		return 0, fmt.Errorf("%w: unknown width %q", ErrBounds, s)
	}
	return Width(n), nil
}

// Valid returns true for W8, W16, W32 and W64.
func (w Width) Valid() bool {
	switch w {
	case W8, W16, W32, W64:
		return true
	}
	return false
}

// Bits returns the number of bits.
func (w Width) Bits() int {
	return int(w)
}

// Min returns the smallest value representable with w.
func (w Width) Min() int64 {
	if !w.Valid() {
		return 0
	}
	return math.MinInt64 >> (64 - w)
}

// Max returns the largest value representable with w.
func (w Width) Max() int64 {
	if !w.Valid() {
		return 0
	}
	return math.MaxInt64 >> (64 - w)
}

// Fits returns true, if [lo, hi] can be represented with w.
func (w Width) Fits(lo, hi int64) bool {
	return w.Valid() && w.Min() <= lo && hi <= w.Max()
}

// Next returns the next wider width.
// For W64 and invalid widths the second return value is false.
func (w Width) Next() (Width, bool) {
	switch w {
	case W8:
		return W16, true
	case W16:
		return W32, true
	case W32:
		return W64, true
	}
	return w, false
}

// String returns "i8", "i16", "i32" or "i64".
func (w Width) String() string {
	if !w.Valid() {
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
	return "i" + strconv.Itoa(int(w))
}
