// perf/delta.go
// Package: perf
package perf

import (
	"fmt"
	"strconv"
)

// LowerIsBetter reports whether smaller values of the named metric indicate
// better performance. Every metric except Inferences/Second is a latency or
// overhead figure, where lower is better.
func LowerIsBetter(name string) bool {
	return name != InferPerSecColumn
}

// Delta returns the percentage change from baseline to undertest for the
// named metric, positive when the under-test run improved. Both values must
// parse as floats and the divisor must be non-zero; otherwise an error is
// returned and the caller renders the row as "n/a" instead of a percentage.
func Delta(name, baseline, undertest string) (float64, error) {
	b, err := strconv.ParseFloat(baseline, 64)
	if err != nil {
		return 0, fmt.Errorf("baseline value %q for %s is not numeric: %w", baseline, name, err)
	}
	u, err := strconv.ParseFloat(undertest, 64)
	if err != nil {
		return 0, fmt.Errorf("under-test value %q for %s is not numeric: %w", undertest, name, err)
	}

	var speedup float64
	if LowerIsBetter(name) {
		if u == 0 {
			return 0, fmt.Errorf("under-test value for %s is zero", name)
		}
		speedup = b / u
	} else {
		if b == 0 {
			return 0, fmt.Errorf("baseline value for %s is zero", name)
		}
		speedup = u / b
	}
	return speedup*100 - 100, nil
}
