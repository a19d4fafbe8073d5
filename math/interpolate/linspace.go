package interpolate

import (
	"fmt"
)

// Linspace returns n evenly spaced points from start to end inclusive. The
// points are filled in by up to workers goroutines.
func Linspace(start, end float64, n, workers int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf(
			"%w: Linspace needs at least 2 points, got %d",
			ErrInsufficientPoints, n,
		)
	}

	xs := make([]float64, n)
	dx := (end - start) / float64(n-1)
	splitRange(workers, n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			xs[i] = start + float64(i)*dx
		}
		return nil
	})
	return xs, nil
}
