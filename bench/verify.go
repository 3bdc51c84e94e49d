package bench

import (
	"errors"
	"fmt"
	"math"
)

// ErrMismatch is returned by Verify when backends disagree.
var ErrMismatch = errors.New("bench: backends disagree")

// Verify checks that every result agrees with the first within relative
// tolerance tol. Values below 1 in magnitude are compared absolutely.
func Verify(results []Result, tol float64) error {
	if len(results) < 2 {
		return nil
	}

	ref := results[0]
	for _, r := range results[1:] {
		if !closeEnough(r.Value, ref.Value, tol) {
			return fmt.Errorf("%w: %s=%s, %s=%s (tolerance %s)", ErrMismatch,
				ref.Label, formatFloat(ref.Value), r.Label, formatFloat(r.Value), formatFloat(tol))
		}
	}
	return nil
}

func closeEnough(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= tol
	}
	return diff/scale <= tol
}
