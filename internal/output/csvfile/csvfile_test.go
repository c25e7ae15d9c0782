package csvfile

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/crimson-sun/starscope/internal/model"
)

func TestWriteReadRoundTrip(t *testing.T) {
	table := model.NewTable([]string{"Domain", "Repository", "Description"})
	table.Append([]string{"Web", "x/one", "plain description"})
	table.Append([]string{"Mobile", "x/two", `contains, the delimiter and "quotes"`})
	table.Append([]string{"Other", "x/three", "line\nbreak"})

	path := filepath.Join(t.TempDir(), "report.csv")
	w, err := New(path)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := w.Write(context.Background(), table); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, table)
	}
}

func TestWritePreservesRowOrder(t *testing.T) {
	table := model.NewTable([]string{"N"})
	for _, n := range []string{"3", "1", "2", "1"} {
		table.Append([]string{n})
	}

	path := filepath.Join(t.TempDir(), "order.csv")
	w, _ := New(path)
	if err := w.Write(context.Background(), table); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	w.Close()

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	vals, _ := got.Column("N")
	want := []string{"3", "1", "2", "1"}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("rows = %v, want %v (order and duplicates preserved)", vals, want)
	}
}

func TestNewUnwritableDestination(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "deep", "report.csv")); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
