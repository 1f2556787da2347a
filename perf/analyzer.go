// perf/analyzer.go
// Package: perf
package perf

import (
	"errors"
	"io"
	"os"
)

var ErrValueCannotBeNil = errors.New("value cannot be nil")

// Analyzer extracts results recorded at a fixed concurrency level and
// reports deltas between two runs. The report is written to Stdout and
// warnings to Stderr.
type Analyzer struct {
	Concurrency    int
	Stdout, Stderr io.Writer
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// NewAnalyzer returns an Analyzer selecting rows at the given concurrency
// level, writing to os.Stdout and os.Stderr unless overridden by options.
func NewAnalyzer(concurrency int, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		Concurrency: concurrency,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
	for _, o := range opts {
		if err := o(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// WithStdout redirects the report output.
func WithStdout(w io.Writer) Option {
	return func(a *Analyzer) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		a.Stdout = w
		return nil
	}
}

// WithStderr redirects warning output.
func WithStderr(w io.Writer) Option {
	return func(a *Analyzer) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		a.Stderr = w
		return nil
	}
}
