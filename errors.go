// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import (
	"errors"
	"fmt"

	"github.com/avdva/bounded/interval"
)

var (
	// ErrRange is returned when a value doesn't fit into the bounds of its type.
	ErrRange = errors.New("value out of range")
	// ErrNoWidth is returned when no width can hold the bounds of an operation's result.
	ErrNoWidth = errors.New("no representable width")
	// ErrBounds is returned for bounds, which can't be used with a given width or type.
	ErrBounds = errors.New("invalid bounds")
	// ErrDivisionByZero is returned when dividing by a zero value or by a [0, 0] type.
	ErrDivisionByZero = interval.ErrDivisionByZero
)

// RangeError describes a value outside of its type's bounds.
type RangeError struct {
	Value int64
	Type  Type
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in %s", ErrRange, e.Value, e.Type)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// WidthError is returned by SelectWidth, when none of the candidate
// widths can represent the interval of an operation's result.
type WidthError struct {
	Op       Op
	Interval interval.Interval
	A, B     Width
}

func (e *WidthError) Error() string {
	if e.Op == OpNone {
		return fmt.Sprintf("%s: %s from %s and %s", ErrNoWidth, e.Interval, e.A, e.B)
	}
	return fmt.Sprintf("%s: %s from %s %s %s", ErrNoWidth, e.Interval, e.A, e.Op, e.B)
}

func (e *WidthError) Unwrap() error { return ErrNoWidth }

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}
