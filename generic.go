// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import "golang.org/x/exp/constraints"

// TypeOf returns a type with bounds [lo, hi] and the width of T.
func TypeOf[T constraints.Signed](lo, hi T) (Type, error) {
	return NewType(WidthOf[T](), int64(lo), int64(hi))
}

// Of returns v with bounds [lo, hi] and the width of T.
//
//	pct, err := bounded.Of[int8](0, 100, 42) // i8[0,100](42)
func Of[T constraints.Signed](lo, hi, v T) (Int, error) {
	t, err := TypeOf(lo, hi)
	if err != nil {
		return Int{}, err
	}
	return t.New(int64(v))
}

// Get returns v as T, or false, if T can't represent every value of v's type.
// The check uses the bounds, not the value, so it either always succeeds
// or always fails for the given type.
func Get[T constraints.Signed](v Int) (T, bool) {
	if !v.IsValid() || !WidthOf[T]().Fits(v.t.iv.Lo, v.t.iv.Hi) {
		return 0, false
	}
	return T(v.v), true
}
