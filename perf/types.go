// perf/types.go
// Package: perf
package perf

// Column names with a fixed meaning in perf result files.
const (
	// ConcurrencyColumn is the column used to select the data row for a run.
	ConcurrencyColumn = "Concurrency"

	// InferPerSecColumn is the throughput column. It is the only metric
	// where a higher value is better.
	InferPerSecColumn = "Inferences/Second"
)

// resultExt is the filename extension of result files; anything else in a
// results directory is ignored.
const resultExt = ".csv"

// Metrics maps a column name to the value recorded at one concurrency level.
type Metrics map[string]string

// PlatformResults maps a platform name (the filename prefix before the first
// underscore) to the metrics extracted from that platform's result file.
type PlatformResults map[string]Metrics

// Row is one rendered comparison line: a metric name, its value on both
// sides, and the formatted delta cell. Delta is empty when the baseline has
// nothing to compare against.
type Row struct {
	Name      string `json:"name"`
	Baseline  string `json:"baseline"`
	Undertest string `json:"undertest"`
	Delta     string `json:"delta,omitempty"`
}
