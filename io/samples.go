package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadSamples reads interpolation nodes from the given zero-indexed columns
// of a whitespace-separated text table.
func ReadSamples(file string, xCol, yCol int) (xs, ys []float64, err error) {
	if xCol < 0 || yCol < 0 || xCol == yCol {
		return nil, nil, fmt.Errorf(
			"Columns %d and %d of '%s' cannot be used as sample columns.",
			xCol, yCol, file,
		)
	}

	cols, err := table.ReadTable(file, []int{xCol, yCol}, nil)
	if err != nil { return nil, nil, err }
	xs, ys = cols[0], cols[1]

	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf(
			"Sample file '%s' has %d x values but %d y values.",
			file, len(xs), len(ys),
		)
	}
	return xs, ys, nil
}
