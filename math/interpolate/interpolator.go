package interpolate

// Interpolator is a 1D interpolator built from sample data which can fail
// to evaluate, e.g. because it has no data yet.
type Interpolator interface {
	SetData(xs, ys []float64) error
	NodeCount() int

	Eval(x float64) (float64, error)
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
}

var (
	_ Interpolator = &Newton{}
)
