// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import (
	"fmt"

	mu "github.com/avdva/bounded/internal/mathutil"
	"github.com/avdva/bounded/interval"
)

// Op is an arithmetic operation.
type Op int

const (
	// OpNone is not an operation. It's used by SelectWidth errors.
	OpNone Op = iota
	// OpAdd is "+".
	OpAdd
	// OpSub is "-".
	OpSub
	// OpMul is "*".
	OpMul
	// OpDiv is "/".
	OpDiv
)

var opNames = [...]string{"none", "+", "-", "*", "/"}

// ParseOp parses "+", "-", "*" or "/".
func ParseOp(s string) (Op, error) {
	for i, name := range opNames[1:] {
		if s == name {
			return Op(i + 1), nil
		}
	}
	return OpNone, fmt.Errorf("unknown operation %q", s)
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

func (op Op) interval(a, b interval.Interval) (interval.Interval, error) {
	switch op {
	case OpAdd:
		return a.Add(b), nil
	case OpSub:
		return a.Sub(b), nil
	case OpMul:
		return a.Mul(b), nil
	case OpDiv:
		return a.Div(b)
	}
	return interval.Interval{}, fmt.Errorf("unknown operation %v", op)
}

func (op Op) apply(a, b int64) (int64, error) {
	var (
		result int64
		ok     bool
	)
	switch op {
	case OpAdd:
		result, ok = mu.CheckedAdd64(a, b)
	case OpSub:
		result, ok = mu.CheckedSub64(a, b)
	case OpMul:
		result, ok = mu.CheckedMul64(a, b)
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		result, ok = mu.CheckedDiv64(a, b)
	default:
		return 0, fmt.Errorf("unknown operation %v", op)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d %s %d overflows int64", ErrRange, a, op, b)
	}
	return result, nil
}

// ResultType returns the type of 'a op b'. It depends only on the operands' types:
// the bounds are propagated with saturating arithmetic, and the width is
// chosen by SelectWidth. A *WidthError is returned if no width fits.
func ResultType(op Op, a, b Type) (Type, error) {
	if !a.Valid() || !b.Valid() {
		return Type{}, fmt.Errorf("%w: invalid type", ErrBounds)
	}
	iv, err := op.interval(a.iv, b.iv)
	if err != nil {
		return Type{}, err
	}
	w, err := selectWidth(op, iv, a.w, b.w)
	if err != nil {
		return Type{}, err
	}
	return Type{w: w, iv: iv}, nil
}

// Apply returns 'a op b'.
// The result type is computed by ResultType before the value is computed.
// An error is returned if there is no suitable type, if b is zero for OpDiv,
// or if the exact result doesn't fit int64, which is only possible when the
// result's bounds were saturated.
func Apply(op Op, a, b Int) (Int, error) {
	t, err := ResultType(op, a.t, b.t)
	if err != nil {
		return Int{}, err
	}
	v, err := op.apply(a.v, b.v)
	if err != nil {
		return Int{}, err
	}
	return t.New(v)
}

// Add returns a+b.
func Add(a, b Int) (Int, error) {
	return Apply(OpAdd, a, b)
}

// Sub returns a-b.
func Sub(a, b Int) (Int, error) {
	return Apply(OpSub, a, b)
}

// Mul returns a*b.
func Mul(a, b Int) (Int, error) {
	return Apply(OpMul, a, b)
}

// Div returns a/b truncated towards zero.
func Div(a, b Int) (Int, error) {
	return Apply(OpDiv, a, b)
}

// Add returns v+other. See Apply.
func (v Int) Add(other Int) (Int, error) {
	return Apply(OpAdd, v, other)
}

// Sub returns v-other. See Apply.
func (v Int) Sub(other Int) (Int, error) {
	return Apply(OpSub, v, other)
}

// Mul returns v*other. See Apply.
func (v Int) Mul(other Int) (Int, error) {
	return Apply(OpMul, v, other)
}

// Div returns v/other. See Apply.
func (v Int) Div(other Int) (Int, error) {
	return Apply(OpDiv, v, other)
}

// Must returns v, or panics if err != nil.
// It's intended for expressions, which are known to be valid:
//	sum := bounded.Must(a.Add(b))
func Must(v Int, err error) Int {
	if err != nil {
		panic(err)
	}
	return v
}
