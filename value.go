// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bounded implements bounded integers: signed integers constrained
// to a closed interval [Lo, Hi] and stored with a fixed width.
//
// The bounds and the width form a value's Type. Arithmetic operations derive
// the result's Type from the operands' Types only: the bounds are propagated
// with saturating interval arithmetic, and the narrowest suitable width is
// selected from the operands' widths and their wider neighbours.
//
//	a := bounded.MustType(bounded.W32, 1, 10).MustNew(2)
//	b := bounded.MustType(bounded.W32, 1, 6).MustNew(2)
//	sum, err := a.Add(b) // i32[2,16](4)
package bounded

import (
	"fmt"

	mu "github.com/avdva/bounded/internal/mathutil"
	"github.com/shopspring/decimal"
)

// Int is a bounded integer. Its value always lies within its Type's bounds.
// Int values are immutable, all conversions return new values.
// The zero Int is invalid, use Type.New and friends to obtain values.
type Int struct {
	t Type
	v int64
}

// IsValid returns false for the zero Int.
func (v Int) IsValid() bool {
	return v.t.Valid()
}

// Value returns the integer.
func (v Int) Value() int64 {
	return v.v
}

// Type returns v's type.
func (v Int) Type() Type {
	return v.t
}

// Underlying returns the storage width.
func (v Int) Underlying() Width {
	return v.t.w
}

// LowerBound returns the lower bound of v's type.
func (v Int) LowerBound() int64 {
	return v.t.LowerBound()
}

// UpperBound returns the upper bound of v's type.
func (v Int) UpperBound() int64 {
	return v.t.UpperBound()
}

// Width returns UpperBound()-LowerBound().
func (v Int) Width() uint64 {
	return v.t.Width()
}

// UnderlyingMin returns the smallest value of the storage width.
func (v Int) UnderlyingMin() int64 {
	return v.t.UnderlyingMin()
}

// UnderlyingMax returns the largest value of the storage width.
func (v Int) UnderlyingMax() int64 {
	return v.t.UnderlyingMax()
}

// NegativePortion see Type.NegativePortion.
func (v Int) NegativePortion() uint64 {
	return v.t.NegativePortion()
}

// PositivePortion see Type.PositivePortion.
func (v Int) PositivePortion() uint64 {
	return v.t.PositivePortion()
}

// Narrow returns v with bounds [lo, hi] and the same width.
// It succeeds iff lo <= v.Value() <= hi and the width can hold [lo, hi].
// The new bounds don't have to be a subset of the old ones.
func (v Int) Narrow(lo, hi int64) (Int, bool) {
	t, err := NewType(v.t.w, lo, hi)
	if err != nil {
		return Int{}, false
	}
	return t.TryNew(v.v)
}

// Widen returns v with bounds [lo, hi] and the same width.
// It fails only if [lo, hi] doesn't contain v's bounds, or doesn't fit the width,
// so the result depends on the types and never on the value.
func (v Int) Widen(lo, hi int64) (Int, error) {
	t, err := v.t.Widen(lo, hi)
	if err != nil {
		return Int{}, err
	}
	return Int{t: t, v: v.v}, nil
}

// Cast returns v with the same bounds stored with width w.
// It fails if w can't represent v's bounds.
func (v Int) Cast(w Width) (Int, error) {
	t, err := v.t.Cast(w)
	if err != nil {
		return Int{}, err
	}
	return Int{t: t, v: v.v}, nil
}

// Eq returns true, if both values represent the same number.
// The types are not compared.
func (v Int) Eq(other Int) bool {
	return v.v == other.v
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Int) Cmp(other Int) int {
	switch {
	case v.v > other.v:
		return 1
	case v.v < other.v:
		return -1
	default:
		return 0
	}
}

// Sign returns -1, 0 or 1 depending on the value's sign.
func (v Int) Sign() int {
	return mu.Int64Sign(v.v)
}

// Decimal returns the value as a decimal.
func (v Int) Decimal() decimal.Decimal {
	return decimal.NewFromInt(v.v)
}

// String returns a string like "i32[1,10](2)".
func (v Int) String() string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.t.String() + "(" + fmt.Sprint(v.v) + ")"
}

// GoString returns debug string representation.
func (v Int) GoString() string {
	return fmt.Sprintf("bounded.Int{%v, %d}", v.t, v.v)
}
