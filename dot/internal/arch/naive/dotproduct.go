// Package naive is the reference dot product kernel: one accumulator,
// index ascending, plain float64 addition.
package naive

// DotProduct returns sum(a[i] * b[i]) accumulated left to right.
// a and b must have equal length.
func DotProduct(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
