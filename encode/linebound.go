/*
 * fwrite - Per-row worst-case line-length bound.
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

import "fmt"

const (
	maxRowSepLen = 2  // "\r\n"
	boolWidth    = 5  // "FALSE"
	int32Width   = 11 // sign + 10 digits
	wideNumWidth = 25 // any DOUBLE or INT64 overlay, scientific or not
)

// UnsupportedKindError is returned by Bound when a column declares a kind
// outside the set this package knows how to size and encode.
type UnsupportedKindError struct {
	Index int
	Kind  ColumnKind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("column %d: unsupported column kind %d", e.Index, e.Kind)
}

// Plan is the output of Bound: the precomputed facts the row encoder needs
// to run its hot loop without recomputing widths or re-checking kinds.
type Plan struct {
	L          int  // worst-case bytes for any single data row
	HeaderL    int  // worst-case bytes for the header row
	RowNameW   int  // bytes reserved for the row-name field, including sep
	Uniform    ColumnKind
	IsUniform  bool // true iff every column shares Uniform and no row-name field is requested
}

// widest returns the length in bytes of the longest string in ss.
func widest(ss []string) int {
	w := 0
	for _, s := range ss {
		if len(s) > w {
			w = len(s)
		}
	}
	return w
}

// widestString scans every cell of a STRING column for its longest value.
func widestString(col ColumnView) int {
	w := 0
	n := col.Len()
	for i := 0; i < n; i++ {
		s, missing := col.StringAt(i)
		if missing {
			continue
		}
		if len(s) > w {
			w = len(s)
		}
	}
	return w
}

// digits10 returns the number of decimal digits in n for n >= 1, i.e. the
// width of the largest 1-based row number n.
func digits10(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Bound computes the worst-case per-row byte bound L. rowNames is
// nil for implicit 1..N row numbering; wantRowNames selects whether a
// row-identifier field is emitted at all.
func Bound(cols []ColumnView, names []string, rowNames RowNames, wantRowNames bool, n int) (*Plan, error) {
	plan := &Plan{L: maxRowSepLen, HeaderL: maxRowSepLen}

	// Row-name contribution.
	switch {
	case !wantRowNames:
		plan.RowNameW = 0
	case rowNames != nil:
		w := 0
		for i := 0; i < rowNames.Len(); i++ {
			if l := len(rowNames.At(i)); l > w {
				w = l
			}
		}
		// Explicit row names are quoted like any other string field:
		// +2 for surrounding quotes, doubled for the escaped-quote worst
		// case, +1 for the trailing separator.
		plan.RowNameW = 2*w + 2 + 1
	default:
		// Implicit index 1..N: digits, a leading '-' never applies, +2 for
		// optional surrounding quotes, +1 for the leading separator.
		plan.RowNameW = digits10(max(n, 1)) + 1 + 2 + 1
	}

	uniform := ColumnKind(0)
	isUniform := !wantRowNames
	for i, col := range cols {
		w, err := columnWidth(col)
		if err != nil {
			return nil, &UnsupportedKindError{Index: i, Kind: col.Kind()}
		}
		plan.L += w + 1

		if i == 0 {
			uniform = col.Kind()
		} else if col.Kind() != uniform {
			isUniform = false
		}
	}
	plan.L += plan.RowNameW
	plan.Uniform = uniform
	plan.IsUniform = isUniform && len(cols) > 0

	// Header bound: one field per column name (plus optional row-name
	// header), each possibly quoted.
	plan.HeaderL += plan.RowNameW
	if names != nil {
		// Each name doubled for the escaped-quote worst case, +2 for
		// surrounding quotes.
		plan.HeaderL += len(names) * (2*widest(names) + 2)
	}
	plan.HeaderL += len(cols) * 2

	return plan, nil
}

// columnWidth returns the per-field byte contribution for one column,
// per the widest possible rendering of each column kind.
func columnWidth(col ColumnView) (int, error) {
	switch col.Kind() {
	case Bool:
		return boolWidth, nil
	case Int32:
		return int32Width, nil
	case Int64, Double:
		return wideNumWidth, nil
	case Factor:
		return 2*widest(col.Levels()) + 2, nil
	case String:
		return 2*widestString(col) + 2, nil
	default:
		return 0, &UnsupportedKindError{Kind: col.Kind()}
	}
}
