// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import (
	"fmt"

	"github.com/avdva/bounded/interval"
	"github.com/shopspring/decimal"
)

// Type is the static part of a bounded integer: a storage width and
// the bounds [Lo, Hi], where w.Min() <= Lo <= Hi <= w.Max().
// Types are comparable: two values have the same type iff their Types are equal.
// The zero Type is invalid.
type Type struct {
	w  Width
	iv interval.Interval
}

// NewType returns a type of width w with bounds [lo, hi].
func NewType(w Width, lo, hi int64) (Type, error) {
	if !w.Valid() {
		return Type{}, fmt.Errorf("%w: unknown width %d", ErrBounds, uint8(w))
	}
	iv, err := interval.New(lo, hi)
	if err != nil {
		return Type{}, fmt.Errorf("%w: %v", ErrBounds, err)
	}
	if !w.Fits(lo, hi) {
		return Type{}, fmt.Errorf("%w: %s doesn't fit %s", ErrBounds, iv, w)
	}
	return Type{w: w, iv: iv}, nil
}

// MustType is like NewType, but panics on error.
func MustType(w Width, lo, hi int64) Type {
	t, err := NewType(w, lo, hi)
	if err != nil {
		panic(err)
	}
	return t
}

// FullType returns the type covering every value of width w.
func FullType(w Width) Type {
	return MustType(w, w.Min(), w.Max())
}

// Valid returns false for the zero Type.
func (t Type) Valid() bool {
	return t.w.Valid()
}

// Underlying returns the storage width.
func (t Type) Underlying() Width {
	return t.w
}

// Interval returns [Lo, Hi].
func (t Type) Interval() interval.Interval {
	return t.iv
}

// LowerBound returns Lo.
func (t Type) LowerBound() int64 {
	return t.iv.Lo
}

// UpperBound returns Hi.
func (t Type) UpperBound() int64 {
	return t.iv.Hi
}

// Width returns Hi-Lo.
func (t Type) Width() uint64 {
	return t.iv.Width()
}

// UnderlyingMin returns the smallest value of the storage width.
func (t Type) UnderlyingMin() int64 {
	return t.w.Min()
}

// UnderlyingMax returns the largest value of the storage width.
func (t Type) UnderlyingMax() int64 {
	return t.w.Max()
}

// NegativePortion returns the magnitude of the part of [Lo, Hi] below zero:
// 0 if Lo >= 0, -Lo if the bounds straddle zero, Width() otherwise.
func (t Type) NegativePortion() uint64 {
	return t.iv.NegativePortion()
}

// PositivePortion returns the magnitude of the part of [Lo, Hi] above zero:
// 0 if Hi <= 0, Hi if the bounds straddle zero, Width() otherwise.
func (t Type) PositivePortion() uint64 {
	return t.iv.PositivePortion()
}

// Contains returns true, if v lies within [Lo, Hi].
func (t Type) Contains(v int64) bool {
	return t.Valid() && t.iv.Contains(v)
}

// String returns the type as "i32[1,10]".
func (t Type) String() string {
	return t.w.String() + t.iv.String()
}

// New returns a value of type t.
// If v is not within the bounds, a *RangeError is returned.
func (t Type) New(v int64) (Int, error) {
	if !t.Valid() {
		return Int{}, fmt.Errorf("%w: invalid type", ErrBounds)
	}
	if !t.iv.Contains(v) {
		return Int{}, &RangeError{Value: v, Type: t}
	}
	return Int{t: t, v: v}, nil
}

// MustNew returns a value of type t.
// A value outside of the bounds is a programming error, so MustNew panics
// with a *RangeError. Use TryNew for values, which weren't validated yet.
func (t Type) MustNew(v int64) Int {
	result, err := t.New(v)
	if err != nil {
		panic(err)
	}
	return result
}

// TryNew returns a value of type t, or false, if v is out of bounds.
func (t Type) TryNew(v int64) (Int, bool) {
	result, err := t.New(v)
	return result, err == nil
}

// FromDecimal converts an integral decimal within the bounds to a value of type t.
func (t Type) FromDecimal(d decimal.Decimal) (Int, error) {
	if !d.Equal(d.Truncate(0)) {
		return Int{}, fmt.Errorf("%w: %s is not an integer", ErrRange, d)
	}
	if d.Cmp(decimal.NewFromInt(t.iv.Lo)) < 0 || d.Cmp(decimal.NewFromInt(t.iv.Hi)) > 0 {
		return Int{}, fmt.Errorf("%w: %s not in %s", ErrRange, d, t)
	}
	return t.New(d.IntPart())
}

// Widen returns a type of the same width with bounds [lo, hi].
// The new bounds must contain the old ones.
func (t Type) Widen(lo, hi int64) (Type, error) {
	if lo > t.iv.Lo || hi < t.iv.Hi {
		return Type{}, fmt.Errorf("%w: [%d,%d] doesn't contain %s", ErrBounds, lo, hi, t.iv)
	}
	return NewType(t.w, lo, hi)
}

// Cast returns a type with the same bounds and width w.
// w must be able to represent the bounds.
func (t Type) Cast(w Width) (Type, error) {
	return NewType(w, t.iv.Lo, t.iv.Hi)
}
