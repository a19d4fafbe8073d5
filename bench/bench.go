/*package bench times batch evaluation of Newton interpolators across worker
counts and plots the resulting speedups.*/
package bench

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/phil-mansfield/newton/io"
	"github.com/phil-mansfield/newton/logging"
	"github.com/phil-mansfield/newton/math/interpolate"
	"github.com/phil-mansfield/newton/render"
)

// DataSet is a named set of interpolation nodes.
type DataSet struct {
	Name   string
	Xs, Ys []float64
}

// Result is the timing of one batch evaluation at a fixed worker count.
type Result struct {
	Threads int
	Time    time.Duration
	Speedup float64
}

// Report collects everything measured for a single DataSet. Err is set if
// the sweep itself failed and PlotErr if only the plot could not be made.
type Report struct {
	Name    string
	Results []Result
	Plot    string
	Err     error
	PlotErr error
}

// Plotter renders a speedup curve to fname.
type Plotter func(threads []int, speedups []float64, fname string) error

// DataSets builds the data sets requested by con: either the table in
// SampleFile or each of the named test functions sampled at uniform nodes.
func DataSets(con *io.BenchmarkConfig, workers int) ([]DataSet, error) {
	if con.ValidSampleFile() {
		xs, ys, err := io.ReadSamples(con.SampleFile, con.XColumn, con.YColumn)
		if err != nil { return nil, err }
		name := path.Base(con.SampleFile)
		name = strings.TrimSuffix(name, filepath.Ext(name))
		return []DataSet{{name, xs, ys}}, nil
	}

	nodes, err := interpolate.Linspace(
		con.NodeStart, con.NodeEnd, con.Nodes, workers,
	)
	if err != nil { return nil, err }

	sets := make([]DataSet, len(con.Functions))
	for i, name := range con.Functions {
		f, err := LookupFunction(name)
		if err != nil { return nil, err }
		sets[i] = DataSet{name, nodes, f.Sample(nodes)}
	}
	return sets, nil
}

// Time returns the mean wall-clock time of evaluating intr at every point
// with the given number of workers.
func Time(
	intr *interpolate.Newton, points []float64, workers, repeats int,
) (time.Duration, error) {
	if repeats < 1 { repeats = 1 }
	out := make([]float64, len(points))

	start := time.Now()
	for i := 0; i < repeats; i++ {
		if _, err := intr.EvalAllWorkers(workers, points, out); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(repeats), nil
}

// Sweep times batch evaluation for every worker count in threads. Speedups
// are relative to the time taken with threads[0] workers.
func Sweep(
	intr *interpolate.Newton, points []float64, threads []int, repeats int,
) ([]Result, error) {
	if len(threads) == 0 {
		return nil, fmt.Errorf("No thread counts given to Sweep().")
	}

	res := make([]Result, len(threads))
	for i, t := range threads {
		dt, err := Time(intr, points, t, repeats)
		if err != nil { return nil, err }
		res[i].Threads, res[i].Time = t, dt
	}

	for i := range res {
		if res[i].Time > 0 {
			res[i].Speedup = float64(res[0].Time) / float64(res[i].Time)
		} else {
			res[i].Speedup = 1
		}
	}
	return res, nil
}

// PlotName returns the file that the speedup plot for a data set is written
// to.
func PlotName(con *io.BenchmarkConfig, name string) string {
	return path.Join(con.Output, fmt.Sprintf(
		"%sspeedup_%s%s.png", con.PrependName, name, con.AppendName,
	))
}

// Run sweeps every data set in con and plots the speedups. workers is used
// for table construction and point generation. A failure in one data set
// does not stop the others; the returned error is only set if the data
// sets themselves could not be built.
func Run(
	con *io.BenchmarkConfig, workers int, plot Plotter,
) ([]Report, error) {
	sets, err := DataSets(con, workers)
	if err != nil { return nil, err }

	points, err := interpolate.Linspace(
		con.PointStart, con.PointEnd, con.Points, workers,
	)
	if err != nil { return nil, err }

	reports := make([]Report, len(sets))
	for i := range sets {
		reports[i] = runDataSet(con, &sets[i], points, workers, plot)
	}
	return reports, nil
}

func runDataSet(
	con *io.BenchmarkConfig, set *DataSet,
	points []float64, workers int, plot Plotter,
) Report {
	rep := Report{Name: set.Name}

	timer := logging.NewTimer(fmt.Sprintf("Table for %s", set.Name))
	intr := interpolate.NewNewton(workers)
	intr.Chunk(con.Chunk)
	if err := intr.SetData(set.Xs, set.Ys); err != nil {
		rep.Err = err
		return rep
	}
	timer.Stop()

	rep.Results, rep.Err = Sweep(intr, points, con.Threads, con.Repeats)
	if rep.Err != nil { return rep }

	for _, r := range rep.Results {
		logging.Printf(logging.Debug, "%s: %2d workers, %s, speedup %.3g",
			set.Name, r.Threads, r.Time, r.Speedup)
	}

	if plot != nil {
		threads := make([]int, len(rep.Results))
		speedups := make([]float64, len(rep.Results))
		for i, r := range rep.Results {
			threads[i], speedups[i] = r.Threads, r.Speedup
		}
		rep.Plot = PlotName(con, set.Name)
		rep.PlotErr = plot(threads, speedups, rep.Plot)
	}

	return rep
}

// DefaultPlotter renders with pyplot.
var DefaultPlotter Plotter = render.PlotSpeedup
