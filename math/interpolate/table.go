package interpolate

import (
	"fmt"
	"math"
)

// DegenerateTolerance is the smallest separation allowed between two sample
// abscissas.
const DegenerateTolerance = 1e-10

// DividedDifferences is the triangular table of Newton divided differences
// for a set of samples. Column j holds the n-j differences of order j, so
// At(i, 0) = ys[i] and
//
//	At(i, j) = (At(i+1, j-1) - At(i, j-1)) / (xs[i+j] - xs[i]).
//
// A DividedDifferences is never modified after BuildTable returns and may be
// read from any number of goroutines.
type DividedDifferences struct {
	xs     []float64
	cols   [][]float64
	coeffs []float64
}

// BuildTable computes the divided differences of the samples (xs, ys) using
// up to workers goroutines per column. xs need not be sorted. The slices are
// copied, so the caller may reuse them.
func BuildTable(xs, ys []float64, workers int) (*DividedDifferences, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"%w: len(xs) = %d but len(ys) = %d", ErrSizeMismatch, len(xs), len(ys),
		)
	} else if len(xs) < 2 {
		return nil, fmt.Errorf(
			"%w: need at least 2 samples, got %d", ErrInsufficientPoints, len(xs),
		)
	}

	n := len(xs)
	dd := &DividedDifferences{
		xs:   make([]float64, n),
		cols: make([][]float64, n),
	}
	copy(dd.xs, xs)

	col0 := make([]float64, n)
	splitRange(workers, n, func(lo, hi int) error {
		copy(col0[lo:hi], ys[lo:hi])
		return nil
	})
	dd.cols[0] = col0

	// Each column only reads the previous one, so columns are filled one at
	// a time and splitRange joins every worker before the next column starts.
	for j := 1; j < n; j++ {
		prev, col := dd.cols[j-1], make([]float64, n-j)
		err := splitRange(workers, n-j, func(lo, hi int) error {
			return dd.fillColumn(j, prev, col, lo, hi)
		})
		if err != nil { return nil, err }
		dd.cols[j] = col
	}

	dd.coeffs = make([]float64, n)
	for k := range dd.coeffs { dd.coeffs[k] = dd.cols[k][0] }

	return dd, nil
}

// fillColumn computes rows [lo, hi) of column j. Every denominator in the
// range is checked; the first degenerate pair found is returned.
func (dd *DividedDifferences) fillColumn(
	j int, prev, col []float64, lo, hi int,
) error {
	var bad *DegenerateError
	xs := dd.xs
	for i := lo; i < hi; i++ {
		den := xs[i+j] - xs[i]
		if math.Abs(den) < DegenerateTolerance {
			if bad == nil {
				bad = &DegenerateError{I: i, J: i + j, Xi: xs[i], Xj: xs[i+j]}
			}
			continue
		}
		col[i] = (prev[i+1] - prev[i]) / den
	}

	if bad != nil { return bad }
	return nil
}

// Len returns the number of samples the table was built from.
func (dd *DividedDifferences) Len() int { return len(dd.xs) }

// At returns the divided difference of order j starting at sample i. It
// panics if j > Len()-1-i.
func (dd *DividedDifferences) At(i, j int) float64 { return dd.cols[j][i] }

// Coefficients returns a copy of the Newton coefficients At(0, k).
func (dd *DividedDifferences) Coefficients() []float64 {
	cs := make([]float64, len(dd.coeffs))
	copy(cs, dd.coeffs)
	return cs
}

// Eval evaluates the Newton form of the interpolating polynomial at x.
func (dd *DividedDifferences) Eval(x float64) float64 {
	cs, xs := dd.coeffs, dd.xs
	result, term := cs[0], 1.0
	for k := 1; k < len(cs); k++ {
		term *= x - xs[k-1]
		result += cs[k] * term
	}
	return result
}

// EvalAll evaluates the polynomial at every point in xs, writing the result
// for xs[i] to out[i]. Points are handed to workers goroutines in chunks of
// chunk points. len(out) must equal len(xs).
func (dd *DividedDifferences) EvalAll(
	xs, out []float64, workers, chunk int,
) error {
	if len(out) != len(xs) {
		return fmt.Errorf(
			"%w: len(xs) = %d but len(out) = %d",
			ErrSizeMismatch, len(xs), len(out),
		)
	}

	dynamicRange(workers, len(xs), chunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = dd.Eval(xs[i])
		}
	})
	return nil
}
