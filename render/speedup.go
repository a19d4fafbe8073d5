/*package render draws the speedup curves produced by the benchmark driver.*/
package render

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	plt "github.com/phil-mansfield/pyplot"
)

var (
	// ErrNoRenderer is returned when no Python interpreter with numpy and
	// matplotlib is available to run the generated script.
	ErrNoRenderer = errors.New("render: python interpreter not found")
	// ErrRenderFailed is returned when the script ran but the figure was
	// not written.
	ErrRenderFailed = errors.New("render: plot not written")
)

// pyplot always runs its script with this executable.
const interpreter = "python"

// pyplot builds one global script, so figures are drawn one at a time.
var pltMutex sync.Mutex

// Available returns nil if plots can be rendered and ErrNoRenderer
// otherwise.
func Available() error {
	if _, err := exec.LookPath(interpreter); err != nil {
		return fmt.Errorf("%w: %s", ErrNoRenderer, err.Error())
	}
	c := exec.Command(interpreter, "-c", "import numpy, matplotlib")
	if err := c.Run(); err != nil {
		return fmt.Errorf(
			"%w: %s cannot import numpy and matplotlib: %s",
			ErrNoRenderer, interpreter, err.Error(),
		)
	}
	return nil
}

// PlotSpeedup plots the measured speedups against worker count, along with
// the ideal linear speedup, and saves the figure to fname.
func PlotSpeedup(threads []int, speedups []float64, fname string) error {
	if len(threads) == 0 || len(speedups) == 0 {
		return fmt.Errorf("Cannot plot an empty speedup curve to '%s'.", fname)
	} else if len(threads) != len(speedups) {
		return fmt.Errorf(
			"Speedup plot '%s' given %d thread counts but %d speedups.",
			fname, len(threads), len(speedups),
		)
	}
	if err := Available(); err != nil { return err }

	ts := make([]float64, len(threads))
	tMax := 0.0
	for i := range threads {
		ts[i] = float64(threads[i])
		if ts[i] > tMax { tMax = ts[i] }
	}

	// A figure left over from an earlier run must not count as success.
	if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
		return err
	}

	pltMutex.Lock()
	defer pltMutex.Unlock()

	plt.Reset()
	plt.Figure(plt.FigSize(12, 8))
	plt.Plot([]float64{0, tMax}, []float64{0, tMax}, "b", plt.LW(2))
	plt.Plot(ts, speedups, "o-", plt.C("red"), plt.LW(2))
	plt.Title("Speedup of batch evaluation relative to one worker")
	plt.XLabel("Workers", plt.FontSize(16))
	plt.YLabel("Speedup", plt.FontSize(16))
	plt.XLim(0, tMax)
	plt.YLim(0, tMax)
	plt.Grid(plt.Axis("x"))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
	if err := execute(); err != nil { return err }

	if _, err := os.Stat(fname); err != nil {
		return fmt.Errorf("%w: %s", ErrRenderFailed, err.Error())
	}
	return nil
}

// execute runs the pending pyplot script. pyplot panics if it cannot write
// the script, which is turned into an error here.
func execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderFailed, r)
		}
	}()
	plt.Execute()
	return nil
}
