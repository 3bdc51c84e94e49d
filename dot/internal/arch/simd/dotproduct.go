//go:build !purego

// Package simd wraps the SSE2/AVX2/NEON dot product from algo-vecmath.
//
// algo-vecmath picks its own instruction set at runtime. This package only
// decides the SIMD level the kernel is registered under, so that forcing
// generic features keeps it out of default selection.
package simd

import vecmath "github.com/cwbudde/algo-vecmath"

// DotProduct returns sum(a[i] * b[i]) using vector instructions where the
// CPU has them. a and b must have equal length.
func DotProduct(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return vecmath.DotProduct(a, b)
}
