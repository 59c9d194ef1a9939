/*
 * fwrite - Ordered parallel batch writer integration test set.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package writer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/fwrite/encode"
	"github.com/rcornwell/fwrite/table"
	"github.com/rcornwell/fwrite/wconfig"
)

func sampleCols(n int) ([]encode.ColumnView, []string) {
	ids := make([]int32, n)
	vals := make([]float64, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = int32(i)
		vals[i] = float64(i) + 0.5
		names[i] = "row"
	}
	cols := []encode.ColumnView{
		table.Int32Column(ids),
		table.DoubleColumn(vals),
		table.NewStringColumn(names),
	}
	return cols, []string{"id", "value", "label"}
}

func TestWriteConcreteScenario(t *testing.T) {
	cols := []encode.ColumnView{
		table.DoubleColumn{3.1416, 30460, 0.0072},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	opts := wconfig.DefaultOptions()
	opts.ColNames = false
	if err := Write(context.Background(), cols, []string{"V1"}, nil, 3, opts, path, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "3.1416\n30460\n0.0072\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteIncludesHeader(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{1, 2}}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	opts := wconfig.DefaultOptions()
	if err := Write(context.Background(), cols, []string{"n"}, nil, 2, opts, path, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "n\n1\n2\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteIsDeterministicAcrossThreadCounts(t *testing.T) {
	cols, names := sampleCols(500)
	opts := wconfig.DefaultOptions()

	var reference []byte
	for _, threads := range []int{1, 2, 4, 8} {
		opts.Threads = threads
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		if err := Write(context.Background(), cols, names, nil, 500, opts, path, nil); err != nil {
			t.Fatalf("Write(threads=%d) returned error: %v", threads, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output (threads=%d): %v", threads, err)
		}
		if reference == nil {
			reference = got
			continue
		}
		if !bytes.Equal(reference, got) {
			t.Errorf("output for threads=%d differs from single-threaded reference", threads)
		}
	}
}

func TestWriteRejectsShapeMismatch(t *testing.T) {
	cols := []encode.ColumnView{
		table.Int32Column{1, 2, 3},
		table.DoubleColumn{1.0, 2.0},
	}
	opts := wconfig.DefaultOptions()
	err := Write(context.Background(), cols, []string{"a", "b"}, nil, 3, opts, "", &bytes.Buffer{})
	if err == nil {
		t.Fatal("Write accepted mismatched column lengths")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != ShapeMismatch {
		t.Errorf("err = %v, want ShapeMismatch", err)
	}
}

type unsupportedColumn struct{ n int }

func (c unsupportedColumn) Kind() encode.ColumnKind           { return encode.ColumnKind(99) }
func (c unsupportedColumn) Len() int                          { return c.n }
func (c unsupportedColumn) Int32At(int) int32                 { return 0 }
func (c unsupportedColumn) Int64BitsAt(int) uint64            { return 0 }
func (c unsupportedColumn) Float64At(int) float64             { return 0 }
func (c unsupportedColumn) BoolAt(int) encode.BoolValue       { return encode.BoolNA }
func (c unsupportedColumn) FactorAt(int) int32                { return 0 }
func (c unsupportedColumn) Levels() []string                  { return nil }
func (c unsupportedColumn) StringAt(int) ([]byte, bool)       { return nil, true }

func TestWriteRejectsUnsupportedColumnKind(t *testing.T) {
	cols := []encode.ColumnView{unsupportedColumn{n: 2}}
	opts := wconfig.DefaultOptions()
	err := Write(context.Background(), cols, []string{"a"}, nil, 2, opts, "", &bytes.Buffer{})
	if err == nil {
		t.Fatal("Write accepted an unsupported column kind")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != UnsupportedColumnKind {
		t.Errorf("err = %v, want UnsupportedColumnKind", err)
	}
}

func TestWriteOpenFailedForUnwritablePath(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{1}}
	opts := wconfig.DefaultOptions()
	err := Write(context.Background(), cols, []string{"a"}, nil, 1, opts, "/nonexistent-dir/out.csv", nil)
	if err == nil {
		t.Fatal("Write accepted a path in a nonexistent directory")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != OpenFailed {
		t.Errorf("err = %v, want OpenFailed", err)
	}
}

func TestWriteEmptyTableWritesHeaderOnly(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{}}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	opts := wconfig.DefaultOptions()
	if err := Write(context.Background(), cols, []string{"n"}, nil, 0, opts, path, nil); err != nil {
		t.Fatalf("Write returned error for empty table: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "n\n" {
		t.Errorf("output = %q, want %q", got, "n\n")
	}
}

func TestWriteRowNamesQuotedHeaderAndImplicitNumbers(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{10, 20}}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	opts := wconfig.DefaultOptions()
	opts.RowNames = true
	if err := Write(context.Background(), cols, []string{"n"}, nil, 2, opts, path, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "\"\",n\n\"1\",10\n\"2\",20\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteRowNamesUnquotedUnderQuoteNever(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{10, 20}}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	opts := wconfig.DefaultOptions()
	opts.RowNames = true
	opts.Quote = wconfig.QuoteNever
	if err := Write(context.Background(), cols, []string{"n"}, nil, 2, opts, path, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := ",n\n1,10\n2,20\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteConsoleForcesSingleThreadAndLFRowSep(t *testing.T) {
	cols := []encode.ColumnView{table.Int32Column{1, 2, 3}}
	opts := wconfig.DefaultOptions()
	opts.ColNames = false
	opts.RowSep = []byte("\r\n")
	opts.Threads = 8

	var buf bytes.Buffer
	if err := Write(context.Background(), cols, []string{"n"}, nil, 3, opts, "", &buf); err != nil {
		t.Fatalf("Write to console returned error: %v", err)
	}
	want := "1\n2\n3\n"
	if buf.String() != want {
		t.Errorf("console output = %q, want %q", buf.String(), want)
	}
}

func TestWriteOutOfMemoryInjection(t *testing.T) {
	SetOOMInjectionForTesting(true)
	defer SetOOMInjectionForTesting(false)

	cols := []encode.ColumnView{table.Int32Column{1, 2, 3}}
	opts := wconfig.DefaultOptions()
	opts.Threads = 1

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	err := Write(context.Background(), cols, []string{"n"}, nil, 3, opts, path, nil)
	if err == nil {
		t.Fatal("Write did not fail with OOM injection enabled")
	}
	werr, ok := err.(*Error)
	if !ok || werr.Kind != OutOfMemory {
		t.Errorf("err = %v, want OutOfMemory", err)
	}
}

func TestWriteAppendAddsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	cols := []encode.ColumnView{table.Int32Column{1}}
	opts := wconfig.DefaultOptions()
	opts.ColNames = false
	if err := Write(context.Background(), cols, []string{"n"}, nil, 1, opts, path, nil); err != nil {
		t.Fatalf("first Write returned error: %v", err)
	}

	opts.Append = true
	cols2 := []encode.ColumnView{table.Int32Column{2}}
	if err := Write(context.Background(), cols2, []string{"n"}, nil, 1, opts, path, nil); err != nil {
		t.Fatalf("second Write (append) returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "1\n2\n" {
		t.Errorf("output = %q, want %q", got, "1\n2\n")
	}
}
