package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/crimson-sun/starscope/internal/model"
	"github.com/crimson-sun/starscope/internal/output"
)

// Writer writes a table as CSV: one header row, then one row per record in
// input order, nothing omitted or reordered. Quoting is handled by
// encoding/csv, so values containing the delimiter, quotes, or newlines
// round-trip exactly.
type Writer struct {
	f *os.File // nil when writing to stdout
	w *csv.Writer
}

var _ output.Writer = (*Writer)(nil)

// New creates a CSV writer for path. The path "-" writes to stdout.
func New(path string) (*Writer, error) {
	if path == "-" {
		return &Writer{w: csv.NewWriter(os.Stdout)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv output: create %s: %w", path, err)
	}
	return &Writer{f: f, w: csv.NewWriter(f)}, nil
}

// Write serializes the whole table.
func (w *Writer) Write(_ context.Context, t *model.Table) error {
	if err := w.w.Write(t.Columns); err != nil {
		return fmt.Errorf("csv output: header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.w.Write(row); err != nil {
			return fmt.Errorf("csv output: row: %w", err)
		}
	}
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("csv output: flush: %w", err)
	}
	return nil
}

// Close closes the underlying file. Writing to stdout closes nothing.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}

// Read parses a CSV report back into a table. The first row is the header.
func Read(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv report: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv report: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv report: %s has no header row", path)
	}

	t := model.NewTable(records[0])
	for _, row := range records[1:] {
		t.Append(row)
	}
	return t, nil
}
