package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/newton/bench"
	"github.com/phil-mansfield/newton/io"
	"github.com/phil-mansfield/newton/logging"
	"github.com/phil-mansfield/newton/render"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		benchmark, exampleConfig string
		threads int
		verbose bool
	)
	vars := map[string]*string{
		"Benchmark": &benchmark,
		"ExampleConfig": &exampleConfig,
	}

	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of workers used to build tables and generate points. " +
			"Default is the number of logical cores.",
	)
	flag.BoolVar(
		&verbose, "Verbose", false, "Log the timing of every measurement.",
	)
	flag.StringVar(
		&benchmark, "Benchmark", "",
		"Configuration file for [Benchmark] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. The only accepted argument is " +
			"'Benchmark'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Benchmark":
		con, err := io.ReadBenchmarkConfig(benchmark)
		if err != nil { log.Fatal(err.Error()) }
		if threads <= 0 {
			log.Fatalf("'Threads' must be positive, but is %d.", threads)
		}

		logging.Mode = logging.Performance
		if verbose { logging.Mode = logging.Debug }

		if failed := benchmarkMain(con, threads); failed > 0 {
			os.Exit(1)
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Benchmark":
			fmt.Println(io.ExampleBenchmarkFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Benchmark'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but newton " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// benchmarkMain runs the sweep described by con and returns the number of
// data sets which failed.
func benchmarkMain(con *io.BenchmarkConfig, threads int) int {
	fg, err := setupIO(con)
	if err != nil { log.Fatal(err.Error()) }
	defer fg.Close()

	log.Println("Running Benchmark main.")

	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	var plot bench.Plotter = bench.DefaultPlotter
	if err := render.Available(); err != nil {
		log.Printf("Speedup plots will not be made: %s", err.Error())
		plot = nil
	}

	reports, err := bench.Run(con, threads, plot)
	if err != nil { log.Fatal(err.Error()) }

	failed := logReports(reports)
	logging.Printf(logging.Performance, "%s", logging.MemString())
	log.Printf("%d/%d data sets benchmarked.",
		len(reports) - failed, len(reports))

	return failed
}

// logReports logs the outcome of every report and returns the number of
// data sets whose sweep or plot failed.
func logReports(reports []bench.Report) int {
	failed := 0
	for _, rep := range reports {
		if rep.Err != nil {
			log.Printf("Benchmark of %s failed: %s", rep.Name, rep.Err.Error())
			failed++
			continue
		}

		for _, r := range rep.Results {
			log.Printf("%s: workers %2d, time %s, speedup %.3g",
				rep.Name, r.Threads, r.Time, r.Speedup)
		}

		if rep.PlotErr != nil {
			log.Printf("Could not plot %s: %s", rep.Plot, rep.PlotErr.Error())
			failed++
		} else if rep.Plot != "" {
			log.Printf("Wrote %s", rep.Plot)
		}
	}
	return failed
}

func setupIO(con *io.BenchmarkConfig) (*FileGroup, error) {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { return nil, err }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { return nil, err }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { return nil, err }
	}

	return fg, nil
}
