package testutil

import (
	"math"

	"golang.org/x/exp/rand"
)

// Pattern returns a deterministic vector: v[i] = (i*mul)%mod + offset.
// Distinct (mul, mod) pairs give vectors that are far from parallel.
func Pattern(n, mul, mod int, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64((i*mul)%mod) + offset
	}
	return out
}

// Wave returns v[i] = sin(step*i + phase).
func Wave(n int, step, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(step*float64(i) + phase)
	}
	return out
}

// Uniform returns n values in [0, 1) from a fixed seed.
func Uniform(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// Zeros returns a zero vector of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Add returns a + b elementwise. a and b must have equal length.
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
