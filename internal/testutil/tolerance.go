// Package testutil holds assertions and input vectors shared by the tests.
package testutil

import (
	"math"
	"testing"
)

// CloseEnough reports whether a and b agree within relative tolerance eps.
// Values near zero are compared with absolute tolerance eps instead.
func CloseEnough(a, b, eps float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= eps
	}
	return diff/scale <= eps
}

// RequireClose fails t if got and want differ by more than eps (see CloseEnough).
func RequireClose(t *testing.T, got, want, eps float64) {
	t.Helper()
	if !CloseEnough(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}
