package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when paired slices (xs and ys, or points
	// and an output buffer) have different lengths.
	ErrSizeMismatch = errors.New("interpolate: size mismatch")
	// ErrInsufficientPoints is returned when fewer than two samples or
	// fewer than two generated points are requested.
	ErrInsufficientPoints = errors.New("interpolate: insufficient points")
	// ErrDegenerateNodes is returned when two sample abscissas are closer
	// than DegenerateTolerance.
	ErrDegenerateNodes = errors.New("interpolate: degenerate nodes")
	// ErrUninitialized is returned when a Newton interpolator is evaluated
	// before any successful call to SetData.
	ErrUninitialized = errors.New("interpolate: uninitialized")
)

// DegenerateError records the first pair of abscissas found to be closer
// than DegenerateTolerance during table construction.
type DegenerateError struct {
	I, J   int
	Xi, Xj float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf(
		"%s: xs[%d] = %g and xs[%d] = %g are separated by less than %g",
		ErrDegenerateNodes, e.I, e.Xi, e.J, e.Xj, DegenerateTolerance,
	)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerateNodes }
