package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const ExampleBenchmarkFile = `[Benchmark]

#######################
# Required Parameters #
#######################

# Directory which the speedup plots will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Test functions to interpolate. Each one is sampled at the nodes below and
# gets its own speedup plot. Accepted names are function_1 through
# function_5. Default is all of them.
# Functions = function_1
# Functions = function_3

# Worker counts to time batch evaluation with. Speedups are measured relative
# to the first value given. Default is 1, 2, 4, 6, 8, 12, 16.
# Threads = 1
# Threads = 2
# Threads = 4

# Interpolation nodes, evenly spaced over [NodeStart, NodeEnd].
# NodeStart = 0
# NodeEnd = 4
# Nodes = 9

# Alternatively, nodes can be read from a text table. The columns are
# zero-indexed and lines starting with '#' are ignored. If SampleFile is set,
# Functions, NodeStart, NodeEnd and Nodes are ignored.
# SampleFile = path/to/samples.txt
# XColumn = 0
# YColumn = 1

# Evaluation points, evenly spaced over [PointStart, PointEnd].
# PointStart = 0
# PointEnd = 4
# Points = 10000

# Each timing is averaged over this many batch evaluations.
# Repeats = 1

# Number of points a worker takes from the queue at a time.
# Chunk = 100

# Will result in plots named pre_speedup_function_1_app.png:
# PrependName = pre_
# AppendName  = _app

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

var (
	DefaultFunctions = []string{
		"function_1", "function_2", "function_3", "function_4", "function_5",
	}
	DefaultThreads = []int{1, 2, 4, 6, 8, 12, 16}
)

type BenchmarkConfig struct {
	// Required
	Output string

	// Optional
	Functions []string
	Threads   []int

	NodeStart, NodeEnd float64
	Nodes              int

	SampleFile       string
	XColumn, YColumn int

	PointStart, PointEnd float64
	Points               int

	Repeats, Chunk int

	AppendName, PrependName string
	LogFile, ProfileFile    string
}

type BenchmarkWrapper struct {
	Benchmark BenchmarkConfig
}

func DefaultBenchmarkWrapper() *BenchmarkWrapper {
	con := BenchmarkConfig{}
	con.NodeStart, con.NodeEnd, con.Nodes = 0, 4, 9
	con.XColumn, con.YColumn = 0, 1
	con.PointStart, con.PointEnd, con.Points = 0, 4, 10000
	con.Repeats = 1
	con.Chunk = 100
	return &BenchmarkWrapper{con}
}

// ReadBenchmarkConfig reads a [Benchmark] config file, fills in defaults and
// checks it.
func ReadBenchmarkConfig(fname string) (*BenchmarkConfig, error) {
	wrap := DefaultBenchmarkWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Benchmark.CheckInit(); err != nil { return nil, err }
	return &wrap.Benchmark, nil
}

// ParseBenchmarkConfig is ReadBenchmarkConfig for a config held in memory.
func ParseBenchmarkConfig(text string) (*BenchmarkConfig, error) {
	wrap := DefaultBenchmarkWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Benchmark.CheckInit(); err != nil { return nil, err }
	return &wrap.Benchmark, nil
}

func (con *BenchmarkConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *BenchmarkConfig) ValidSampleFile() bool {
	return con.SampleFile != ""
}
func (con *BenchmarkConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *BenchmarkConfig) ValidNodes() bool {
	return con.Nodes >= 2
}
func (con *BenchmarkConfig) ValidPoints() bool {
	return con.Points >= 2
}
func (con *BenchmarkConfig) ValidRepeats() bool {
	return con.Repeats > 0
}
func (con *BenchmarkConfig) ValidChunk() bool {
	return con.Chunk > 0
}
func (con *BenchmarkConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *BenchmarkConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// CheckInit fills in the multi-valued defaults and returns a descriptive
// error for the first invalid parameter.
func (con *BenchmarkConfig) CheckInit() error {
	if len(con.Functions) == 0 {
		con.Functions = append([]string{}, DefaultFunctions...)
	}
	if len(con.Threads) == 0 {
		con.Threads = append([]int{}, DefaultThreads...)
	}

	for i := range con.Functions {
		con.Functions[i] = strings.TrimSpace(con.Functions[i])
	}

	if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidSampleFile() && !con.ValidNodes() {
		return fmt.Errorf(
			"'Nodes' must be at least 2, but is %d.", con.Nodes,
		)
	} else if con.ValidSampleFile() && !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, " +
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidPoints() {
		return fmt.Errorf(
			"'Points' must be at least 2, but is %d.", con.Points,
		)
	} else if !con.ValidRepeats() {
		return fmt.Errorf(
			"'Repeats' must be positive, but is %d.", con.Repeats,
		)
	} else if !con.ValidChunk() {
		return fmt.Errorf("'Chunk' must be positive, but is %d.", con.Chunk)
	}

	for _, t := range con.Threads {
		if t <= 0 {
			return fmt.Errorf(
				"All 'Threads' values must be positive, but %d was given.", t,
			)
		}
	}

	return nil
}
