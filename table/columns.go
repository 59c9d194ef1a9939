/*
 * fwrite - In-memory column types implementing encode.ColumnView.
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

// Package table is a small in-memory, ColumnView-backed table used by the
// demo CLI, the interactive prompt, and the test suite. The engine itself
// never imports this package; it only ever sees the encode.ColumnView
// interface, bound once at the write boundary.
package table

import (
	"math"

	"github.com/rcornwell/fwrite/encode"
)

const Int32NA = int32(math.MinInt32)

// BoolColumn is a three-valued boolean vector.
type BoolColumn []encode.BoolValue

func (c BoolColumn) Kind() encode.ColumnKind           { return encode.Bool }
func (c BoolColumn) Len() int                          { return len(c) }
func (c BoolColumn) BoolAt(i int) encode.BoolValue      { return c[i] }
func (c BoolColumn) Int32At(int) int32                  { panic("table: BoolColumn has no Int32At") }
func (c BoolColumn) Int64BitsAt(int) uint64             { panic("table: BoolColumn has no Int64BitsAt") }
func (c BoolColumn) Float64At(int) float64              { panic("table: BoolColumn has no Float64At") }
func (c BoolColumn) FactorAt(int) int32                 { panic("table: BoolColumn has no FactorAt") }
func (c BoolColumn) Levels() []string                   { return nil }
func (c BoolColumn) StringAt(int) ([]byte, bool)        { panic("table: BoolColumn has no StringAt") }

// Int32Column is a signed 32-bit integer vector; Int32NA marks a missing
// cell.
type Int32Column []int32

func (c Int32Column) Kind() encode.ColumnKind           { return encode.Int32 }
func (c Int32Column) Len() int                          { return len(c) }
func (c Int32Column) Int32At(i int) int32               { return c[i] }
func (c Int32Column) BoolAt(int) encode.BoolValue       { panic("table: Int32Column has no BoolAt") }
func (c Int32Column) Int64BitsAt(int) uint64            { panic("table: Int32Column has no Int64BitsAt") }
func (c Int32Column) Float64At(int) float64             { panic("table: Int32Column has no Float64At") }
func (c Int32Column) FactorAt(int) int32                { panic("table: Int32Column has no FactorAt") }
func (c Int32Column) Levels() []string                  { return nil }
func (c Int32Column) StringAt(int) ([]byte, bool)       { panic("table: Int32Column has no StringAt") }

// Int64Column stores signed 64-bit integers in the bit pattern of a
// float64, the convention used throughout this package for 64-bit integers.
type Int64Column []uint64

func NewInt64Column(vals []int64) Int64Column {
	out := make(Int64Column, len(vals))
	for i, v := range vals {
		out[i] = uint64(v)
	}
	return out
}

func (c Int64Column) Kind() encode.ColumnKind           { return encode.Int64 }
func (c Int64Column) Len() int                          { return len(c) }
func (c Int64Column) Int64BitsAt(i int) uint64          { return c[i] }
func (c Int64Column) BoolAt(int) encode.BoolValue       { panic("table: Int64Column has no BoolAt") }
func (c Int64Column) Int32At(int) int32                 { panic("table: Int64Column has no Int32At") }
func (c Int64Column) Float64At(int) float64             { panic("table: Int64Column has no Float64At") }
func (c Int64Column) FactorAt(int) int32                { panic("table: Int64Column has no FactorAt") }
func (c Int64Column) Levels() []string                  { return nil }
func (c Int64Column) StringAt(int) ([]byte, bool)       { panic("table: Int64Column has no StringAt") }

// DoubleColumn is an IEEE-754 binary64 vector; any NaN is missing.
type DoubleColumn []float64

func (c DoubleColumn) Kind() encode.ColumnKind          { return encode.Double }
func (c DoubleColumn) Len() int                         { return len(c) }
func (c DoubleColumn) Float64At(i int) float64          { return c[i] }
func (c DoubleColumn) BoolAt(int) encode.BoolValue      { panic("table: DoubleColumn has no BoolAt") }
func (c DoubleColumn) Int32At(int) int32                { panic("table: DoubleColumn has no Int32At") }
func (c DoubleColumn) Int64BitsAt(int) uint64           { panic("table: DoubleColumn has no Int64BitsAt") }
func (c DoubleColumn) FactorAt(int) int32               { panic("table: DoubleColumn has no FactorAt") }
func (c DoubleColumn) Levels() []string                 { return nil }
func (c DoubleColumn) StringAt(int) ([]byte, bool)      { panic("table: DoubleColumn has no StringAt") }

// FactorColumn is a 1-based index vector into a shared ordered dictionary
// of text levels; index 0 is missing.
type FactorColumn struct {
	Idx    []int32
	Levels_ []string
}

func (c FactorColumn) Kind() encode.ColumnKind          { return encode.Factor }
func (c FactorColumn) Len() int                         { return len(c.Idx) }
func (c FactorColumn) FactorAt(i int) int32             { return c.Idx[i] }
func (c FactorColumn) Levels() []string                 { return c.Levels_ }
func (c FactorColumn) BoolAt(int) encode.BoolValue      { panic("table: FactorColumn has no BoolAt") }
func (c FactorColumn) Int32At(int) int32                { panic("table: FactorColumn has no Int32At") }
func (c FactorColumn) Int64BitsAt(int) uint64           { panic("table: FactorColumn has no Int64BitsAt") }
func (c FactorColumn) Float64At(int) float64            { panic("table: FactorColumn has no Float64At") }
func (c FactorColumn) StringAt(int) ([]byte, bool)      { panic("table: FactorColumn has no StringAt") }

// StringColumn is a text vector; Missing[i] marks a missing cell (the
// stored byte slice for a missing cell is ignored by the encoder).
type StringColumn struct {
	Values  [][]byte
	Missing []bool
}

func NewStringColumn(vals []string) StringColumn {
	c := StringColumn{
		Values:  make([][]byte, len(vals)),
		Missing: make([]bool, len(vals)),
	}
	for i, v := range vals {
		c.Values[i] = []byte(v)
	}
	return c
}

func (c StringColumn) Kind() encode.ColumnKind { return encode.String }
func (c StringColumn) Len() int                { return len(c.Values) }
func (c StringColumn) StringAt(i int) ([]byte, bool) {
	return c.Values[i], c.Missing[i]
}
func (c StringColumn) BoolAt(int) encode.BoolValue   { panic("table: StringColumn has no BoolAt") }
func (c StringColumn) Int32At(int) int32             { panic("table: StringColumn has no Int32At") }
func (c StringColumn) Int64BitsAt(int) uint64        { panic("table: StringColumn has no Int64BitsAt") }
func (c StringColumn) Float64At(int) float64         { panic("table: StringColumn has no Float64At") }
func (c StringColumn) FactorAt(int) int32            { panic("table: StringColumn has no FactorAt") }
func (c StringColumn) Levels() []string              { return nil }
