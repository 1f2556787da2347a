// perf/results.go
// Package: perf
package perf

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PlatformFromFilename derives the platform name from a result filename:
// the substring before the first underscore, or the whole name when it
// contains none.
func PlatformFromFilename(name string) string {
	platform, _, _ := strings.Cut(name, "_")
	return platform
}

// ReadResults scans dir for result files and extracts, per platform, the
// data row recorded at the analyzer's concurrency level. If two files map to
// the same platform the one scanned last wins. A file that cannot be parsed,
// or that has no row at the requested concurrency, contributes an empty
// Metrics plus a warning on Stderr; only a directory-level failure is
// returned as an error.
func (a *Analyzer) ReadResults(dir string) (PlatformResults, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read results directory: %w", err)
	}

	paths := map[string]string{}
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), resultExt) {
			continue
		}
		paths[PlatformFromFilename(e.Name())] = filepath.Join(dir, e.Name())
	}

	results := make(PlatformResults, len(paths))
	for platform, path := range paths {
		metrics, err := a.readResultFile(path)
		if err != nil {
			fmt.Fprintf(a.Stderr, "warning: unable to parse CSV file %s\n", path)
			metrics = Metrics{}
		}
		results[platform] = metrics
	}
	return results, nil
}

// readResultFile pairs the header row with the first data row whose leading
// column equals the analyzer's concurrency level. Rows whose leading column
// is not an integer are skipped. Header and data row are zipped up to the
// shorter of the two.
func (a *Analyzer) readResultFile(path string) (Metrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("no header row: %w", err)
	}

	var selected []string
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if len(row) == 0 {
			continue
		}
		c, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		if c == a.Concurrency {
			selected = row
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("no row at concurrency %d", a.Concurrency)
	}

	metrics := make(Metrics, len(header))
	for i := 0; i < len(header) && i < len(selected); i++ {
		metrics[header[i]] = selected[i]
	}
	return metrics, nil
}
