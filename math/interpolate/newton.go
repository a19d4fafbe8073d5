package interpolate

import (
	"fmt"
	"sync/atomic"
)

// Newton interpolates a set of samples with the unique polynomial of degree
// n-1 passing through all n of them, using Newton's divided differences.
//
// The table is built once by SetData and then shared, read-only, by every
// evaluation. A Newton may be evaluated from many goroutines at once, and
// SetData may run concurrently with evaluations: readers see either the old
// table or the new one, never a partially built one.
type Newton struct {
	dd      atomic.Pointer[DividedDifferences]
	workers atomic.Int64
	chunk   atomic.Int64
}

// NewNewton returns an empty interpolator which uses the given number of
// workers for table construction and batch evaluation. A non-positive
// count means DefaultWorkers().
func NewNewton(workers int) *Newton {
	intr := new(Newton)
	intr.Workers(workers)
	intr.Chunk(DefaultChunk)
	return intr
}

// NewNewtonFromData is NewNewton followed by SetData.
func NewNewtonFromData(xs, ys []float64, workers int) (*Newton, error) {
	intr := NewNewton(workers)
	if err := intr.SetData(xs, ys); err != nil { return nil, err }
	return intr, nil
}

// Workers sets the number of workers used by SetData and EvalAll. A
// non-positive count means DefaultWorkers().
func (intr *Newton) Workers(workers int) {
	if workers <= 0 { workers = DefaultWorkers() }
	intr.workers.Store(int64(workers))
}

// WorkerCount returns the configured number of workers.
func (intr *Newton) WorkerCount() int {
	w := int(intr.workers.Load())
	if w <= 0 { return DefaultWorkers() }
	return w
}

// Chunk sets how many points a worker takes at a time during EvalAll. A
// non-positive size means DefaultChunk.
func (intr *Newton) Chunk(size int) {
	if size <= 0 { size = DefaultChunk }
	intr.chunk.Store(int64(size))
}

func (intr *Newton) chunkSize() int {
	c := int(intr.chunk.Load())
	if c <= 0 { return DefaultChunk }
	return c
}

// SetData replaces the interpolator's samples and rebuilds its table. On
// failure the previous samples, if any, remain in use.
func (intr *Newton) SetData(xs, ys []float64) error {
	dd, err := BuildTable(xs, ys, intr.WorkerCount())
	if err != nil { return err }
	intr.dd.Store(dd)
	return nil
}

// Table returns the current divided-difference table, or ErrUninitialized
// if SetData has never succeeded.
func (intr *Newton) Table() (*DividedDifferences, error) {
	dd := intr.dd.Load()
	if dd == nil {
		return nil, fmt.Errorf("%w: SetData has not been called", ErrUninitialized)
	}
	return dd, nil
}

// NodeCount returns the number of samples, or 0 if no data has been set.
func (intr *Newton) NodeCount() int {
	dd := intr.dd.Load()
	if dd == nil { return 0 }
	return dd.Len()
}

// Coefficients returns a copy of the Newton coefficients of the current
// polynomial.
func (intr *Newton) Coefficients() ([]float64, error) {
	dd, err := intr.Table()
	if err != nil { return nil, err }
	return dd.Coefficients(), nil
}

// Eval computes the value of the interpolating polynomial at x.
func (intr *Newton) Eval(x float64) (float64, error) {
	dd, err := intr.Table()
	if err != nil { return 0, err }
	return dd.Eval(x), nil
}

// EvalAll evaluates the polynomial at every point in xs using the
// configured number of workers. If an output buffer is given it is written
// to and returned; it must have the same length as xs.
func (intr *Newton) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return intr.EvalAllWorkers(intr.WorkerCount(), xs, out...)
}

// EvalAllWorkers is EvalAll with an explicit worker count for this call
// only. A non-positive count means DefaultWorkers().
func (intr *Newton) EvalAllWorkers(
	workers int, xs []float64, out ...[]float64,
) ([]float64, error) {
	dd, err := intr.Table()
	if err != nil { return nil, err }

	if len(out) > 1 {
		return nil, fmt.Errorf(
			"%w: EvalAll given %d output buffers", ErrSizeMismatch, len(out),
		)
	}
	var res []float64
	if len(out) == 1 {
		if len(out[0]) != len(xs) {
			return nil, fmt.Errorf(
				"%w: len(xs) = %d but len(out) = %d",
				ErrSizeMismatch, len(xs), len(out[0]),
			)
		}
		res = out[0]
	} else {
		res = make([]float64, len(xs))
	}

	if workers <= 0 { workers = DefaultWorkers() }
	if err := dd.EvalAll(xs, res, workers, intr.chunkSize()); err != nil {
		return nil, err
	}
	return res, nil
}
