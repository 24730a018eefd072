package mathutil

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	decMax = decimal.NewFromInt(math.MaxInt64)
	decMin = decimal.NewFromInt(math.MinInt64)
)

// exact returns the int64-clamped exact value of d and true if no clamping was needed.
func exact(d decimal.Decimal) (int64, bool) {
	switch {
	case d.Cmp(decMax) > 0:
		return math.MaxInt64, false
	case d.Cmp(decMin) < 0:
		return math.MinInt64, false
	default:
		return d.IntPart(), true
	}
}

var edgeValues = []int64{
	0, 1, -1, 2, -2, 6, -6,
	math.MaxInt8, math.MinInt8,
	math.MaxInt32, math.MinInt32,
	math.MaxInt64, math.MinInt64,
	math.MaxInt64 - 1, math.MinInt64 + 1,
	math.MaxInt64 / 2, math.MinInt64 / 2,
	1 << 32, -(1 << 32),
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		abs uint64
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 1 << 63},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.abs, uint64(AbsInt64(test.v)))
		})
	}
}

func TestSaturatingEdges(t *testing.T) {
	a := assert.New(t)
	for _, x := range edgeValues {
		for _, y := range edgeValues {
			dx, dy := decimal.NewFromInt(x), decimal.NewFromInt(y)

			want, fits := exact(dx.Add(dy))
			a.Equal(want, SatAdd64(x, y), "%d + %d", x, y)
			got, ok := CheckedAdd64(x, y)
			a.Equal(fits, ok, "%d + %d", x, y)
			if fits {
				a.Equal(want, got)
			}

			want, fits = exact(dx.Sub(dy))
			a.Equal(want, SatSub64(x, y), "%d - %d", x, y)
			got, ok = CheckedSub64(x, y)
			a.Equal(fits, ok, "%d - %d", x, y)
			if fits {
				a.Equal(want, got)
			}

			want, fits = exact(dx.Mul(dy))
			a.Equal(want, SatMul64(x, y), "%d * %d", x, y)
			got, ok = CheckedMul64(x, y)
			a.Equal(fits, ok, "%d * %d", x, y)
			if fits {
				a.Equal(want, got)
			}

			if y == 0 {
				a.Panics(func() { SatDiv64(x, y) })
				_, ok = CheckedDiv64(x, y)
				a.False(ok)
				continue
			}
			quo, _ := dx.QuoRem(dy, 0)
			want, fits = exact(quo)
			a.Equal(want, SatDiv64(x, y), "%d / %d", x, y)
			got, ok = CheckedDiv64(x, y)
			a.Equal(fits, ok, "%d / %d", x, y)
			if fits {
				a.Equal(want, got)
			}
		}
	}
}

func TestSaturationIsIdempotent(t *testing.T) {
	a := assert.New(t)
	for _, v := range []int64{1, 2, 100, math.MaxInt32, math.MaxInt64} {
		a.Equal(int64(math.MaxInt64), SatAdd64(math.MaxInt64, v))
		a.Equal(int64(math.MinInt64), SatAdd64(math.MinInt64, -v))
		a.Equal(int64(math.MaxInt64), SatSub64(math.MaxInt64, -v))
		a.Equal(int64(math.MinInt64), SatSub64(math.MinInt64, v))
		if v > 1 {
			a.Equal(int64(math.MaxInt64), SatMul64(math.MaxInt64, v))
			a.Equal(int64(math.MinInt64), SatMul64(math.MinInt64, v))
			a.Equal(int64(math.MaxInt64), SatMul64(math.MinInt64, -v))
		}
	}
}

func TestSaturatingRandom(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		x, y := int64(rnd.Uint64()), int64(rnd.Uint64()>>uint(rnd.Intn(64)))
		dx, dy := decimal.NewFromInt(x), decimal.NewFromInt(y)
		want, _ := exact(dx.Mul(dy))
		if !a.Equal(want, SatMul64(x, y), "%d * %d", x, y) {
			return
		}
		want, _ = exact(dx.Add(dy))
		if !a.Equal(want, SatAdd64(x, y), "%d + %d", x, y) {
			return
		}
	}
}

func TestInt64Sign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Int64Sign(0))
	a.Equal(1, Int64Sign(42))
	a.Equal(-1, Int64Sign(math.MinInt64))
	a.True(SameSign(-1, math.MinInt64))
	a.True(SameSign(0, 1))
	a.False(SameSign(0, -1))
}

func BenchmarkSatMul64(b *testing.B) {
	var dummy int64
	for i := 0; i < b.N; i++ {
		dummy += SatMul64(int64(i), math.MaxInt32) + SatMul64(int64(-i), math.MaxInt64)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkIfSign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += sign(int64(i)) + sign(int64(-i)) + sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func sign(i int64) int {
	if i == 0 {
		return 0
	}
	if i > 0 {
		return 1
	}
	return -1
}
