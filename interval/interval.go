// Package interval implements closed int64 intervals and the propagation
// of interval bounds through integer arithmetic.
//
// All endpoints are computed with saturating arithmetic: a bound which
// would leave the int64 range is clamped to math.MinInt64 or math.MaxInt64.
package interval

import (
	"errors"
	"fmt"
	"math"

	mu "github.com/avdva/bounded/internal/mathutil"
)

var (
	// ErrEmpty is returned when lo > hi.
	ErrEmpty = errors.New("empty interval")
	// ErrDivisionByZero is returned when the divisor interval is [0, 0].
	ErrDivisionByZero = errors.New("division by zero")
)

// Full is the interval holding every int64 value.
var Full = Interval{Lo: math.MinInt64, Hi: math.MaxInt64}

// Interval is a closed range of integers [Lo, Hi].
type Interval struct {
	Lo, Hi int64
}

// New returns [lo, hi], or ErrEmpty if lo > hi.
func New(lo, hi int64) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("%w: [%d,%d]", ErrEmpty, lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns [v, v].
func Point(v int64) Interval {
	return Interval{Lo: v, Hi: v}
}

// Valid returns true, if Lo <= Hi.
func (iv Interval) Valid() bool {
	return iv.Lo <= iv.Hi
}

// Contains returns true, if v lies within iv.
func (iv Interval) Contains(v int64) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Within returns true, if iv is a subset of other.
func (iv Interval) Within(other Interval) bool {
	return other.Lo <= iv.Lo && iv.Hi <= other.Hi
}

// Union returns the smallest interval containing both iv and other.
func (iv Interval) Union(other Interval) Interval {
	return Interval{Lo: min(iv.Lo, other.Lo), Hi: max(iv.Hi, other.Hi)}
}

// Width returns Hi-Lo. The result is exact for every valid interval.
func (iv Interval) Width() uint64 {
	return uint64(iv.Hi) - uint64(iv.Lo)
}

// NegativePortion returns the magnitude of the part of iv lying below zero.
func (iv Interval) NegativePortion() uint64 {
	switch {
	case iv.Lo >= 0:
		return 0
	case iv.Hi >= 0:
		return uint64(mu.AbsInt64(iv.Lo))
	default:
		return iv.Width()
	}
}

// PositivePortion returns the magnitude of the part of iv lying above zero.
func (iv Interval) PositivePortion() uint64 {
	switch {
	case iv.Hi <= 0:
		return 0
	case iv.Lo <= 0:
		return uint64(iv.Hi)
	default:
		return iv.Width()
	}
}

// String returns iv as "[lo,hi]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi)
}

// Add returns the interval of x+y for x in iv, y in other.
func (iv Interval) Add(other Interval) Interval {
	return Interval{
		Lo: mu.SatAdd64(iv.Lo, other.Lo),
		Hi: mu.SatAdd64(iv.Hi, other.Hi),
	}
}

// Sub returns the interval of x-y for x in iv, y in other.
func (iv Interval) Sub(other Interval) Interval {
	return Interval{
		Lo: mu.SatSub64(iv.Lo, other.Hi),
		Hi: mu.SatSub64(iv.Hi, other.Lo),
	}
}

// Mul returns the interval of x*y for x in iv, y in other.
func (iv Interval) Mul(other Interval) Interval {
	return corners(iv, other, mu.SatMul64)
}

// Div returns the interval of x/y (truncated) for x in iv, y in other, y != 0.
// Division is not monotonic over a divisor range containing zero, so such
// a divisor is split into its negative and positive parts, and zero itself
// is excluded. If other is [0, 0], ErrDivisionByZero is returned.
func (iv Interval) Div(other Interval) (Interval, error) {
	var (
		result Interval
		found  bool
	)
	if other.Lo < 0 {
		result, found = corners(iv, Interval{Lo: other.Lo, Hi: min(other.Hi, -1)}, mu.SatDiv64), true
	}
	if other.Hi > 0 {
		pos := corners(iv, Interval{Lo: max(other.Lo, 1), Hi: other.Hi}, mu.SatDiv64)
		if found {
			result = result.Union(pos)
		} else {
			result, found = pos, true
		}
	}
	if !found {
		return Interval{}, ErrDivisionByZero
	}
	return result, nil
}

// corners applies fn to every combination of endpoints and returns the range of the results.
// This is exact for operations, which are monotonic in each argument on the given intervals.
func corners(x, y Interval, fn func(a, b int64) int64) Interval {
	vals := [...]int64{
		fn(x.Lo, y.Lo),
		fn(x.Lo, y.Hi),
		fn(x.Hi, y.Lo),
		fn(x.Hi, y.Hi),
	}
	result := Point(vals[0])
	for _, v := range vals[1:] {
		result = result.Union(Point(v))
	}
	return result
}
