/*
 * fwrite - Table: an ordered sequence of equal-length columns.
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

package table

import (
	"fmt"

	"github.com/rcornwell/fwrite/encode"
)

// Table is an ordered sequence of C equal-length columns, optionally
// carrying column names and an explicit row-names column.
type Table struct {
	Cols     []encode.ColumnView
	Names    []string
	RowNames encode.RowNames // nil for implicit 1..N row numbering
	N        int
}

// New builds a Table after checking that every column shares the same
// length; ShapeMismatch is caught here rather than deep inside the
// engine, before any byte is written.
func New(cols []encode.ColumnView, names []string) (*Table, error) {
	if len(cols) == 0 {
		return &Table{Cols: cols, Names: names, N: 0}, nil
	}
	n := cols[0].Len()
	for i, c := range cols {
		if c.Len() != n {
			return nil, fmt.Errorf("table: column %d has length %d, want %d", i, c.Len(), n)
		}
	}
	return &Table{Cols: cols, Names: names, N: n}, nil
}

// ExplicitRowNames implements encode.RowNames over a plain string slice.
type ExplicitRowNames []string

func (r ExplicitRowNames) Len() int      { return len(r) }
func (r ExplicitRowNames) At(i int) []byte { return []byte(r[i]) }
