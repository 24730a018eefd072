package interval

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func iv(lo, hi int64) Interval {
	return Interval{Lo: lo, Hi: hi}
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	i, err := New(1, 10)
	a.NoError(err)
	a.Equal(iv(1, 10), i)
	_, err = New(10, 1)
	a.True(errors.Is(err, ErrEmpty))
	a.EqualError(err, "empty interval: [10,1]")
}

func TestPortions(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		iv       Interval
		width    uint64
		neg, pos uint64
	}{
		{iv(1, 10), 9, 0, 9},
		{iv(-5, 10), 15, 5, 10},
		{iv(0, 10), 10, 0, 10},
		{iv(-10, 0), 10, 10, 0},
		{iv(-10, -3), 7, 7, 0},
		{iv(0, 0), 0, 0, 0},
		{Full, math.MaxUint64, 1 << 63, math.MaxInt64},
		{iv(math.MinInt64, -1), math.MaxInt64, math.MaxInt64, 0},
		{iv(math.MinInt8, math.MaxInt8), math.MaxUint8, 128, 127},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.width, test.iv.Width())
			a.Equal(test.neg, test.iv.NegativePortion())
			a.Equal(test.pos, test.iv.PositivePortion())
			a.Equal(test.iv.Width(), test.iv.NegativePortion()+test.iv.PositivePortion())
		})
	}
}

func TestContainsWithin(t *testing.T) {
	a := assert.New(t)
	a.True(iv(1, 10).Contains(1))
	a.True(iv(1, 10).Contains(10))
	a.False(iv(1, 10).Contains(0))
	a.False(iv(1, 10).Contains(11))
	a.True(iv(2, 3).Within(iv(1, 10)))
	a.True(iv(1, 10).Within(iv(1, 10)))
	a.False(iv(0, 3).Within(iv(1, 10)))
	a.Equal(iv(-3, 10), iv(1, 10).Union(iv(-3, 2)))
	a.Equal("[-3,10]", iv(-3, 10).String())
}

func TestArithmetic(t *testing.T) {
	a := assert.New(t)
	const (
		max32 = math.MaxInt32
		max64 = math.MaxInt64
		min64 = math.MinInt64
	)
	tests := []struct {
		op      string
		x, y    Interval
		result  Interval
		errText string
	}{
		{"+", iv(1, 10), iv(1, 6), iv(2, 16), ""},
		{"+", iv(1, max32), iv(1, 6), iv(2, max32+6), ""},
		{"+", iv(1, max64), iv(1, 6), iv(2, max64), ""},
		{"+", iv(min64, -1), iv(-6, 6), iv(min64, 5), ""},

		{"-", iv(1, 10), iv(1, 6), iv(-5, 9), ""},
		{"-", iv(1, max64), iv(1, 6), iv(-5, max64-1), ""},
		{"-", iv(1, 6), iv(1, max64), iv(1-max64, 5), ""},
		{"-", iv(min64, 0), iv(1, 6), iv(min64, -1), ""},
		{"-", iv(0, 1), iv(min64, 0), iv(0, max64), ""},

		{"*", iv(1, 10), iv(1, 6), iv(1, 60), ""},
		{"*", iv(1, max32), iv(1, 6), iv(1, max32*6), ""},
		{"*", iv(1, max64), iv(1, 6), iv(1, max64), ""},
		{"*", iv(min64, 5), iv(2, 6), iv(min64, 30), ""},
		{"*", iv(-5, 3), iv(-5, 3), iv(-15, 25), ""},
		{"*", iv(-5, 3), iv(2, 6), iv(-30, 18), ""},
		{"*", iv(min64, 0), iv(-1, -1), iv(0, max64), ""},

		{"/", iv(1, 10), iv(1, 6), iv(0, 10), ""},
		{"/", iv(1, max32), iv(1, 6), iv(0, max32), ""},
		{"/", iv(1, max64), iv(1, 6), iv(0, max64), ""},
		{"/", iv(1, 6), iv(1, max64), iv(0, 6), ""},
		{"/", iv(-10, 10), iv(-2, 5), iv(-10, 10), ""},
		{"/", iv(1, 10), iv(0, 5), iv(0, 10), ""},
		{"/", iv(1, 10), iv(-5, 0), iv(-10, 0), ""},
		{"/", iv(-20, -10), iv(2, 5), iv(-10, -2), ""},
		{"/", iv(min64, 0), iv(-1, -1), iv(0, max64), ""},
		{"/", iv(1, 10), iv(0, 0), Interval{}, "division by zero"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var (
				result Interval
				err    error
			)
			switch test.op {
			case "+":
				result = test.x.Add(test.y)
			case "-":
				result = test.x.Sub(test.y)
			case "*":
				result = test.x.Mul(test.y)
			case "/":
				result, err = test.x.Div(test.y)
			}
			if len(test.errText) == 0 {
				if a.NoError(err) {
					a.Equal(test.result, result, "%v %s %v", test.x, test.op, test.y)
				}
			} else {
				a.EqualError(err, test.errText)
			}
		})
	}
}

// TestArithmeticSound checks, that every result of an operation on members of
// two small random intervals lies within the propagated interval.
func TestArithmeticSound(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	randIv := func() Interval {
		x, y := rnd.Int63n(41)-20, rnd.Int63n(41)-20
		return iv(min(x, y), max(x, y))
	}
	for n := 0; n < 500; n++ {
		x, y := randIv(), randIv()
		sum, diff, prod := x.Add(y), x.Sub(y), x.Mul(y)
		quo, quoErr := x.Div(y)
		for i := x.Lo; i <= x.Hi; i++ {
			for j := y.Lo; j <= y.Hi; j++ {
				if !a.True(sum.Contains(i+j), "%d+%d in %v", i, j, sum) ||
					!a.True(diff.Contains(i-j), "%d-%d in %v", i, j, diff) ||
					!a.True(prod.Contains(i*j), "%d*%d in %v", i, j, prod) {
					return
				}
				if j == 0 {
					continue
				}
				if a.NoError(quoErr) && !a.True(quo.Contains(i/j), "%d/%d in %v", i, j, quo) {
					return
				}
			}
		}
	}
}
