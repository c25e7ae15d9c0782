// Package charts renders distribution charts from a classification report.
package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/crimson-sun/starscope/internal/output/csvfile"
)

// chartSpec ties a report column to its rendered chart.
type chartSpec struct {
	column   string
	title    string
	filename string
}

var specs = []chartSpec{
	{"Domain", "Starred Repositories by Domain", "domain_distribution.html"},
	{"Project Type", "Starred Repositories by Project Type", "project_type_distribution.html"},
	{"Language", "Starred Repositories by Language", "language_distribution.html"},
}

// Generate reads a classification report CSV and writes one bar chart per
// distribution column into outDir. A missing report or a report without the
// expected columns is a fatal error; nothing is partially rendered after it.
func Generate(csvPath, outDir string) error {
	table, err := csvfile.Read(csvPath)
	if err != nil {
		return fmt.Errorf("charts: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("charts: %w", err)
	}

	for _, spec := range specs {
		values, err := table.Column(spec.column)
		if err != nil {
			return fmt.Errorf("charts: %w", err)
		}
		path := filepath.Join(outDir, spec.filename)
		if err := renderBar(spec.title, countValues(values), path); err != nil {
			return fmt.Errorf("charts: render %s: %w", spec.filename, err)
		}
		slog.Info("chart written", "column", spec.column, "path", path)
	}
	return nil
}

type valueCount struct {
	value string
	count int
}

// countValues tallies the column values and orders them ascending by count
// so the largest bar ends up at the top of the reversed axis. Ties break on
// the value name to keep renders stable.
func countValues(values []string) []valueCount {
	tally := make(map[string]int)
	for _, v := range values {
		tally[v]++
	}
	counts := make([]valueCount, 0, len(tally))
	for v, n := range tally {
		counts = append(counts, valueCount{value: v, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count < counts[j].count
		}
		return counts[i].value < counts[j].value
	})
	return counts
}

func renderBar(title string, counts []valueCount, path string) error {
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.value
		data[i] = opts.BarData{Value: c.count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	bar.SetXAxis(labels).AddSeries("repositories", data)
	bar.XYReversal()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
