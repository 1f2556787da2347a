// perf/report.go
// Package: perf
package perf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	improvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	regressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	naStyle        = lipgloss.NewStyle().Faint(true)
)

// LatencyAnalysis compares baseline and under-test results and writes a
// per-platform delta report to Stdout. Platforms present only in the
// baseline are not reported. A concurrency mismatch between the two sides
// of a platform produces a warning on Stderr but the comparison proceeds.
func (a *Analyzer) LatencyAnalysis(baselineName, undertestName string, baseline, undertest PlatformResults) {
	platforms := make([]string, 0, len(undertest))
	for p := range undertest {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		undertestResult := undertest[platform]
		fmt.Fprintf(a.Stdout, "\n%s\n%s\n", platform, strings.Repeat("-", len(platform)))
		fmt.Fprintf(a.Stdout, "%40s%12s\n", baselineName, undertestName)

		baselineResult := baseline[platform]
		if bc, ok := baselineResult[ConcurrencyColumn]; ok {
			if uc, ok := undertestResult[ConcurrencyColumn]; ok && bc != uc {
				fmt.Fprintf(a.Stderr, "warning: baseline concurrency %s != under-test concurrency %s\n", bc, uc)
			}
		}

		for _, row := range compareRows(baselineResult, undertestResult) {
			if row.Delta == "" {
				fmt.Fprintf(a.Stdout, "%-28s%12s%12s\n", row.Name, row.Baseline, row.Undertest)
				continue
			}
			fmt.Fprintf(a.Stdout, "%-28s%12s%12s%20s\n", row.Name, row.Baseline, row.Undertest, row.Delta)
		}
	}
}

// compareRows builds the displayed rows for one platform. A missing baseline
// platform or metric yields a "<none>" placeholder with no delta cell.
func compareRows(baseline, undertest Metrics) []Row {
	rows := make([]Row, 0, len(undertest))
	for _, name := range orderedMetricNames(undertest) {
		value := undertest[name]
		baselineValue, ok := baseline[name]
		if !ok {
			rows = append(rows, Row{Name: name, Baseline: "<none>", Undertest: value})
			continue
		}
		rows = append(rows, Row{
			Name:      name,
			Baseline:  baselineValue,
			Undertest: value,
			Delta:     formatDelta(name, baselineValue, value),
		})
	}
	return rows
}

// orderedMetricNames returns the under-test metric names sorted ascending,
// with Concurrency removed and Inferences/Second pinned to the final
// position so the throughput figure is always the last row.
func orderedMetricNames(undertest Metrics) []string {
	names := make([]string, 0, len(undertest))
	for name := range undertest {
		if name == ConcurrencyColumn || name == InferPerSecColumn {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if _, ok := undertest[InferPerSecColumn]; ok {
		names = append(names, InferPerSecColumn)
	}
	return names
}

// formatDelta renders the delta cell: the percentage with two decimals,
// green for an improvement, red for a regression, unstyled when flat.
// Rows whose values cannot be compared render as a faint "n/a".
func formatDelta(name, baseline, undertest string) string {
	delta, err := Delta(name, baseline, undertest)
	if err != nil {
		return naStyle.Render("n/a")
	}
	text := fmt.Sprintf("%.2f%%", delta)
	switch {
	case delta > 0:
		return improvedStyle.Render(text)
	case delta < 0:
		return regressedStyle.Render(text)
	}
	return text
}
