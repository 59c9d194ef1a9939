/*
 * fwrite - Column data model shared by the row encoder.
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

// Package encode implements the per-row encoder and line-bound calculator
// that sit between a host-owned table and the parallel batch writer.
package encode

// ColumnKind tags the physical representation of one column.
type ColumnKind int

const (
	Bool ColumnKind = iota + 1
	Int32
	Int64 // stored in the bit pattern of a float64, see Int64BitsAt.
	Double
	Factor
	String
)

// Int64NA is the missing-value bit pattern for the INT64 overlay. This is
// the fixed sentinel used by the originating numerical ecosystem's 64-bit
// integer convention and must not be changed; see SPEC_FULL.md's Open
// Question on the INT64 missing sentinel.
const Int64NA uint64 = 0x7FF00000000007A2

// BoolValue is a three-valued boolean: true, false, or missing.
type BoolValue int

const (
	BoolFalse BoolValue = iota
	BoolTrue
	BoolNA
)

// ColumnView abstracts over a host-owned typed vector. The engine never
// inspects host types directly; it binds one ColumnView per column at the
// write boundary and only calls through this interface from then on.
type ColumnView interface {
	Kind() ColumnKind
	Len() int

	Int32At(i int) int32 // INT32; missing sentinel is math.MinInt32.

	// Int64BitsAt returns the raw bit pattern of an INT64-overlay cell.
	// Compare against Int64NA to detect missing.
	Int64BitsAt(i int) uint64

	Float64At(i int) float64 // DOUBLE; NaN means missing.

	BoolAt(i int) BoolValue

	// FactorAt returns the 1-based index into Levels, or 0 for missing.
	FactorAt(i int) int32
	Levels() []string

	// StringAt returns the raw bytes of a STRING cell, or missing=true.
	StringAt(i int) (s []byte, missing bool)
}

// RowNames abstracts over an optional leading row-identifier column. A nil
// RowNames means implicit 1..N row numbers.
type RowNames interface {
	Len() int
	At(i int) []byte // 0-based row index
}
