package dot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by errors for vectors of different lengths.
	ErrInvalidArgument = errors.New("dot: invalid argument")

	// ErrUnknownBackend is returned when no kernel is registered under a name.
	ErrUnknownBackend = errors.New("dot: unknown backend")
)

// LengthError reports two vectors of different lengths.
type LengthError struct {
	A, B int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("dot: length mismatch: got %d and %d", e.A, e.B)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match.
func (e *LengthError) Unwrap() error {
	return ErrInvalidArgument
}

func checkLengths(a, b []float64) error {
	if len(a) != len(b) {
		return &LengthError{A: len(a), B: len(b)}
	}
	return nil
}
