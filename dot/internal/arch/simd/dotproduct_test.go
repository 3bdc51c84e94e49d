//go:build !purego

package simd

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-dot/dot/internal/arch/naive"
	"github.com/cwbudde/algo-dot/internal/testutil"
)

func TestDotProduct(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "empty", a: nil, b: nil, want: 0},
		{name: "single", a: []float64{3.5}, b: []float64{2}, want: 7},
		{name: "simple dot", a: []float64{1, 2, 3}, b: []float64{4, 5, 6}, want: 32},
		{name: "mixed signs", a: []float64{-1, 2, -3}, b: []float64{4, -5, 6}, want: -32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.RequireClose(t, DotProduct(tc.a, tc.b), tc.want, 1e-14)
		})
	}
}

func TestDotProductNaiveParity(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 1023, 1024, 1025}
	for _, n := range sizes {
		t.Run("n="+strconv.Itoa(n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			for i := range a {
				a[i] = math.Sin(float64(i) * 0.1)
				b[i] = math.Cos(float64(i) * 0.17)
			}

			got := DotProduct(a, b)
			want := naive.DotProduct(a, b)
			if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
				t.Fatalf("DotProduct() = %v, want %v", got, want)
			}
		})
	}
}
