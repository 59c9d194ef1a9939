/*
 * fwrite - Row encoder test set.
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

package encode

import (
	"math"
	"testing"
)

type doubleColumn []float64

func (c doubleColumn) Kind() ColumnKind       { return Double }
func (c doubleColumn) Len() int               { return len(c) }
func (c doubleColumn) Float64At(i int) float64 { return c[i] }
func (c doubleColumn) Int32At(int) int32      { panic("not a int32 column") }
func (c doubleColumn) Int64BitsAt(int) uint64 { panic("not an int64 column") }
func (c doubleColumn) BoolAt(int) BoolValue   { panic("not a bool column") }
func (c doubleColumn) FactorAt(int) int32     { panic("not a factor column") }
func (c doubleColumn) Levels() []string       { return nil }
func (c doubleColumn) StringAt(int) ([]byte, bool) { panic("not a string column") }

type int32Column []int32

func (c int32Column) Kind() ColumnKind       { return Int32 }
func (c int32Column) Len() int               { return len(c) }
func (c int32Column) Int32At(i int) int32    { return c[i] }
func (c int32Column) Int64BitsAt(int) uint64 { panic("not an int64 column") }
func (c int32Column) Float64At(int) float64  { panic("not a double column") }
func (c int32Column) BoolAt(int) BoolValue   { panic("not a bool column") }
func (c int32Column) FactorAt(int) int32     { panic("not a factor column") }
func (c int32Column) Levels() []string       { return nil }
func (c int32Column) StringAt(int) ([]byte, bool) { panic("not a string column") }

type stringColumn struct {
	values  []string
	missing []bool
}

func (c stringColumn) Kind() ColumnKind { return String }
func (c stringColumn) Len() int         { return len(c.values) }
func (c stringColumn) StringAt(i int) ([]byte, bool) {
	return []byte(c.values[i]), c.missing[i]
}
func (c stringColumn) Int32At(int) int32      { panic("not an int32 column") }
func (c stringColumn) Int64BitsAt(int) uint64 { panic("not an int64 column") }
func (c stringColumn) Float64At(int) float64  { panic("not a double column") }
func (c stringColumn) BoolAt(int) BoolValue   { panic("not a bool column") }
func (c stringColumn) FactorAt(int) int32     { panic("not a factor column") }
func (c stringColumn) Levels() []string       { return nil }

type boolColumn []BoolValue

func (c boolColumn) Kind() ColumnKind      { return Bool }
func (c boolColumn) Len() int              { return len(c) }
func (c boolColumn) BoolAt(i int) BoolValue { return c[i] }
func (c boolColumn) Int32At(int) int32      { panic("not an int32 column") }
func (c boolColumn) Int64BitsAt(int) uint64 { panic("not an int64 column") }
func (c boolColumn) Float64At(int) float64  { panic("not a double column") }
func (c boolColumn) FactorAt(int) int32     { panic("not a factor column") }
func (c boolColumn) Levels() []string       { return nil }
func (c boolColumn) StringAt(int) ([]byte, bool) { panic("not a string column") }

type stringRowNames []string

func (r stringRowNames) Len() int          { return len(r) }
func (r stringRowNames) At(i int) []byte   { return []byte(r[i]) }

func encodeAllRows(t *testing.T, cols []ColumnView, names []string, cfg Config, rowNames RowNames, wantRowNames bool, n int) string {
	t.Helper()
	plan, err := Bound(cols, names, rowNames, wantRowNames, n)
	if err != nil {
		t.Fatalf("Bound failed: %v", err)
	}
	enc := New(cols, rowNames, cfg, plan)
	buf := make([]byte, plan.L*n+64)
	off := 0
	for i := 0; i < n; i++ {
		off = enc.EncodeRow(buf, off, i)
	}
	return string(buf[:off])
}

func defaultTestConfig() Config {
	return Config{
		ColSep:      ',',
		RowSep:      []byte("\n"),
		DecSep:      '.',
		NAString:    nil,
		Quote:       QuoteAuto,
		QuoteMethod: QuoteEscape,
		Turbo:       true,
	}
}

func TestEncodeRowDoubleScenario(t *testing.T) {
	cols := []ColumnView{doubleColumn{3.1416, 30460, 0.0072, math.NaN(), math.Inf(1)}}
	got := encodeAllRows(t, cols, []string{"V1"}, defaultTestConfig(), nil, false, 5)
	want := "3.1416\n30460\n0.0072\n\nInf\n"
	if got != want {
		t.Errorf("DOUBLE scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowInt32Scenario(t *testing.T) {
	cols := []ColumnView{int32Column{1, 2, math.MinInt32, -7}}
	cfg := defaultTestConfig()
	cfg.NAString = []byte("NA")
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, false, 4)
	want := "1\n2\nNA\n-7\n"
	if got != want {
		t.Errorf("INT32 scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowStringAutoEscape(t *testing.T) {
	cols := []ColumnView{stringColumn{
		values:  []string{"a,b", "c\"d", "e"},
		missing: []bool{false, false, false},
	}}
	cfg := defaultTestConfig()
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, false, 3)
	want := "\"a,b\"\nc\"d\ne\n"
	if got != want {
		t.Errorf("STRING Auto/Escape scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowStringAlwaysDouble(t *testing.T) {
	cols := []ColumnView{stringColumn{
		values:  []string{"a,b", "c\"d", "e"},
		missing: []bool{false, false, false},
	}}
	cfg := defaultTestConfig()
	cfg.Quote = QuoteAlways
	cfg.QuoteMethod = QuoteDouble
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, false, 3)
	want := "\"a,b\"\n\"c\"\"d\"\n\"e\"\n"
	if got != want {
		t.Errorf("STRING Always/Double scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowBoolScenario(t *testing.T) {
	cols := []ColumnView{boolColumn{BoolTrue, BoolFalse, BoolNA}}
	cfg := defaultTestConfig()
	cfg.NAString = []byte("")
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, false, 3)
	want := "TRUE\nFALSE\n\n"
	if got != want {
		t.Errorf("BOOL scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowExtremeExponents(t *testing.T) {
	cols := []ColumnView{doubleColumn{1e-300, 1e300}}
	got := encodeAllRows(t, cols, []string{"V1"}, defaultTestConfig(), nil, false, 2)
	want := "1e-300\n1e+300\n"
	if got != want {
		t.Errorf("extreme exponent scenario = %q, want %q", got, want)
	}
}

func TestEncodeRowRowNamesPrefixEachRow(t *testing.T) {
	cols := []ColumnView{int32Column{10, 20}}
	cfg := defaultTestConfig()
	cfg.RowNames = true
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, true, 2)
	want := "\"1\",10\n\"2\",20\n"
	if got != want {
		t.Errorf("implicit row names = %q, want %q", got, want)
	}
}

func TestEncodeRowRowNamesUnquotedWhenQuoteNever(t *testing.T) {
	cols := []ColumnView{int32Column{10, 20}}
	cfg := defaultTestConfig()
	cfg.RowNames = true
	cfg.Quote = QuoteNever
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, nil, true, 2)
	want := "1,10\n2,20\n"
	if got != want {
		t.Errorf("implicit row names under QuoteNever = %q, want %q", got, want)
	}
}

func TestEncodeRowExplicitRowNamesQuotedByContent(t *testing.T) {
	cols := []ColumnView{int32Column{10, 20}}
	cfg := defaultTestConfig()
	cfg.RowNames = true
	names := stringRowNames{"plain", "has,comma"}
	got := encodeAllRows(t, cols, []string{"V1"}, cfg, names, true, 2)
	want := "plain,10\n\"has,comma\",20\n"
	if got != want {
		t.Errorf("explicit row names = %q, want %q", got, want)
	}
}

func TestEncodeRowRespectsLineBound(t *testing.T) {
	cols := []ColumnView{
		doubleColumn{1, -1e300, math.NaN(), 0, math.Inf(-1)},
		int32Column{1, 2, math.MinInt32, -7, 100},
	}
	cfg := defaultTestConfig()
	cfg.NAString = []byte("NA")
	plan, err := Bound(cols, []string{"a", "b"}, nil, false, 5)
	if err != nil {
		t.Fatalf("Bound failed: %v", err)
	}
	enc := New(cols, nil, cfg, plan)
	buf := make([]byte, plan.L)
	for i := 0; i < 5; i++ {
		n := enc.EncodeRow(buf, 0, i)
		if n > plan.L {
			t.Errorf("row %d used %d bytes, exceeds bound L=%d", i, n, plan.L)
		}
	}
}
