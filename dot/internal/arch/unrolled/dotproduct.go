// Package unrolled is a pure Go dot product kernel with four independent
// accumulators, which lets the compiler overlap the multiply-add chains.
package unrolled

// DotProduct returns sum(a[i] * b[i]).
// a and b must have equal length. The partial sums are combined in a fixed
// order, so results are deterministic but may differ from the naive kernel
// in the last bits.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
