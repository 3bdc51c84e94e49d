// Package spectral computes the dot product in the frequency domain.
//
// By Parseval's identity, for length-M DFTs A and B of real sequences a and b,
//
//	sum(a[i] * b[i]) = (1/M) * sum(Re(A[k] * conj(B[k])))
//
// Both inputs are zero-padded to the next power of two, which leaves the sum
// unchanged. The kernel costs O(n log n) and two complex buffers, so it is
// registered below every direct kernel and only runs when asked for by name.
//
// FFT round-off scales with ||a||*||b||, not with |a.b|. When that bound is
// too large relative to the result, when an input is not finite, or when the
// transform fails, the kernel returns the naive kernel's sum instead.
package spectral

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dot/dot/internal/arch/naive"
)

const (
	// unitRoundoff is the float64 machine epsilon.
	unitRoundoff = 0x1p-52

	// relTolerance is the relative accuracy the spectral path must reach.
	relTolerance = 1e-9
)

// DotProduct returns sum(a[i] * b[i]) via forward FFTs of a and b.
// a and b must have equal length. The result agrees with the naive kernel
// within 1e-9 relative; inputs where the FFT cannot guarantee that are summed
// directly.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	normA, okA := norm2(a)
	normB, okB := norm2(b)
	if !okA || !okB {
		return naive.DotProduct(a, b)
	}

	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return naive.DotProduct(a, b)
	}

	specA, err := forward(plan, a, size)
	if err != nil {
		return naive.DotProduct(a, b)
	}

	specB, err := forward(plan, b, size)
	if err != nil {
		return naive.DotProduct(a, b)
	}

	sum := 0.0
	for k := range specA {
		x, y := specA[k], specB[k]
		// Re(x * conj(y))
		sum += real(x)*real(y) + imag(x)*imag(y)
	}
	sum /= float64(size)

	// Written negated so a NaN bound or sum also takes the direct path.
	if !(errorBound(normA, normB, size) <= relTolerance*math.Abs(sum)) {
		return naive.DotProduct(a, b)
	}

	return sum
}

// norm2 returns the Euclidean norm of x and false if any element is NaN or
// infinite. An overflowing norm is returned as +Inf with ok still true.
func norm2(x []float64) (float64, bool) {
	ss := 0.0
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		ss += v * v
	}
	return math.Sqrt(ss), true
}

// errorBound estimates the absolute FFT round-off of the spectral sum:
// eps * log2(M) * ||a|| * ||b||.
func errorBound(normA, normB float64, size int) float64 {
	stages := math.Max(1, math.Log2(float64(size)))
	return unitRoundoff * stages * normA * normB
}

func forward(plan *algofft.Plan[complex128], x []float64, size int) ([]complex128, error) {
	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
