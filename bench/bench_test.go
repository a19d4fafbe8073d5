package bench

import (
	"errors"
	"io/ioutil"
	"math"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/newton/io"
	"github.com/phil-mansfield/newton/math/interpolate"
)

func testConfig(t *testing.T, text string) *io.BenchmarkConfig {
	con, err := io.ParseBenchmarkConfig(text)
	require.NoError(t, err)
	return con
}

func TestLookupFunction(t *testing.T) {
	assert.Equal(t, []string{
		"function_1", "function_2", "function_3", "function_4", "function_5",
	}, FunctionNames())

	f, err := LookupFunction("function_2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, f.Sample([]float64{0, 1, 2}))

	f, err = LookupFunction("function_4")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.5), f.F(1), 1e-12)

	_, err = LookupFunction("function_6")
	assert.Error(t, err)
}

func TestDataSets(t *testing.T) {
	con := testConfig(t, "[Benchmark]\nOutput = out\n"+
		"Functions = function_1\nFunctions = function_2\nNodes = 5")
	sets, err := DataSets(con, 2)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "function_1", sets[0].Name)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, sets[1].Xs)
	assert.Equal(t, []float64{1, 0, 1, 4, 9}, sets[1].Ys)

	con = testConfig(t, "[Benchmark]\nOutput = out\nFunctions = nope")
	_, err = DataSets(con, 2)
	assert.Error(t, err)
}

func TestDataSetsFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "newton_bench")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "nodes.txt")
	require.NoError(t, ioutil.WriteFile(fname, []byte("0 1\n1 3\n2 5\n"), 0644))

	con := testConfig(t, "[Benchmark]\nOutput = out\nSampleFile = "+fname)
	sets, err := DataSets(con, 1)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "nodes", sets[0].Name)
	assert.Equal(t, []float64{0, 1, 2}, sets[0].Xs)
	assert.Equal(t, []float64{1, 3, 5}, sets[0].Ys)
}

func TestSweep(t *testing.T) {
	intr, err := interpolate.NewNewtonFromData(
		[]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, 1,
	)
	require.NoError(t, err)
	points, err := interpolate.Linspace(0, 3, 2000, 1)
	require.NoError(t, err)

	res, err := Sweep(intr, points, []int{1, 2, 4}, 2)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, 1.0, res[0].Speedup)
	for i, t0 := range []int{1, 2, 4} {
		assert.Equal(t, t0, res[i].Threads)
		assert.True(t, res[i].Speedup > 0)
	}

	_, err = Sweep(intr, points, nil, 1)
	assert.Error(t, err)

	_, err = Sweep(new(interpolate.Newton), points, []int{1}, 1)
	assert.ErrorIs(t, err, interpolate.ErrUninitialized)
}

func TestRun(t *testing.T) {
	con := testConfig(t, `[Benchmark]
Output = plots
Functions = function_2
Functions = function_5
Threads = 1
Threads = 2
Points = 500
PrependName = pre_`)

	var plotted []string
	plot := func(threads []int, speedups []float64, fname string) error {
		plotted = append(plotted, fname)
		if len(threads) != len(speedups) {
			return errors.New("length mismatch")
		}
		return nil
	}

	reports, err := Run(con, 2, plot)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.NoError(t, rep.Err, rep.Name)
		assert.NoError(t, rep.PlotErr, rep.Name)
		assert.Len(t, rep.Results, 2, rep.Name)
	}
	assert.Equal(t, []string{
		"plots/pre_speedup_function_2.png", "plots/pre_speedup_function_5.png",
	}, plotted)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	dir, err := ioutil.TempDir("", "newton_bench")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "dup.txt")
	require.NoError(t, ioutil.WriteFile(fname, []byte("0 1\n1 2\n1 3\n"), 0644))

	con := testConfig(t, "[Benchmark]\nOutput = out\nSampleFile = "+fname)
	reports, err := Run(con, 1, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.ErrorIs(t, reports[0].Err, interpolate.ErrDegenerateNodes)

	con = testConfig(t, "[Benchmark]\nOutput = out\nFunctions = function_1\n"+
		"Functions = function_3\nThreads = 1\nPoints = 10")
	failPlot := func([]int, []float64, string) error {
		return errors.New("no renderer")
	}
	reports, err = Run(con, 1, failPlot)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.NoError(t, rep.Err)
		assert.Error(t, rep.PlotErr)
	}
}
