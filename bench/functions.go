package bench

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Function is a test function which is sampled to produce interpolation
// nodes.
type Function struct {
	Name string
	F    func(x float64) float64
}

var functions = map[string]func(float64) float64{
	"function_1": func(x float64) float64 { return math.Sin(x) + math.Cos(2*x) },
	"function_2": func(x float64) float64 { return x*x - 2*x + 1 },
	"function_3": func(x float64) float64 { return math.Exp(-x) * math.Sin(3*x) },
	"function_4": func(x float64) float64 { return math.Sqrt(x + 0.5) },
	"function_5": func(x float64) float64 { return math.Tanh(x) * math.Cos(5*x) },
}

// FunctionNames returns the names of all registered test functions in
// sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions { names = append(names, name) }
	sort.Strings(names)
	return names
}

// LookupFunction returns the test function with the given name.
func LookupFunction(name string) (Function, error) {
	f, ok := functions[name]
	if !ok {
		return Function{}, fmt.Errorf(
			"Unrecognized test function '%s'. Accepted names are: %s.",
			name, strings.Join(FunctionNames(), ", "),
		)
	}
	return Function{name, f}, nil
}

// Sample evaluates f at every x.
func (f Function) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs { ys[i] = f.F(x) }
	return ys
}
