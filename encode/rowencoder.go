/*
 * fwrite - Per-row encoder.
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

import "github.com/rcornwell/fwrite/format"

// Quote mode, mirrored here so callers building a Config don't need to
// import the format package just to set it.
type QuoteMode int

const (
	QuoteNever QuoteMode = iota
	QuoteAlways
	QuoteAuto
)

type QuoteMethod int

const (
	QuoteEscape QuoteMethod = iota
	QuoteDouble
)

// Config is the immutable field/row formatting configuration shared by
// every row of one write.
type Config struct {
	ColSep      byte
	RowSep      []byte
	DecSep      byte
	NAString    []byte
	Quote       QuoteMode
	QuoteMethod QuoteMethod
	RowNames    bool
	Turbo       bool
}

// Encoder formats rows of a fixed column set into caller-supplied buffers.
// One Encoder is safe to share read-only across goroutines: it holds no
// mutable state of its own, only references to the immutable table and
// configuration.
type Encoder struct {
	cols     []ColumnView
	rowNames RowNames // nil for implicit 1..N
	cfg      Config
	plan     *Plan
}

func New(cols []ColumnView, rowNames RowNames, cfg Config, plan *Plan) *Encoder {
	return &Encoder{cols: cols, rowNames: rowNames, cfg: cfg, plan: plan}
}

// EncodeRow writes row i into buf starting at off and returns the new
// offset. The caller guarantees len(buf)-off >= plan.L.
func (e *Encoder) EncodeRow(buf []byte, off int, i int) int {
	if e.cfg.RowNames {
		off = e.encodeRowName(buf, off, i)
		buf[off] = e.cfg.ColSep
		off++
	}

	if e.plan.IsUniform {
		switch e.plan.Uniform {
		case Double:
			return e.encodeUniformDouble(buf, off, i)
		case Int32:
			return e.encodeUniformInt32(buf, off, i)
		}
	}

	last := len(e.cols) - 1
	for c, col := range e.cols {
		off = e.encodeCell(buf, off, col, i)
		if c == last {
			off += copy(buf[off:], e.cfg.RowSep)
		} else {
			buf[off] = e.cfg.ColSep
			off++
		}
	}
	return off
}

// encodeRowName writes the row-name column: an explicit name, quoted the
// same way any other string field is (content-dependent under QuoteAuto),
// or the implicit 1-based row number, which is wrapped in quotes whenever
// quoting is on at all (not just when the digits themselves would need it).
func (e *Encoder) encodeRowName(buf []byte, off int, i int) int {
	if e.rowNames != nil {
		return e.encodeString(buf, off, e.rowNames.At(i), false)
	}
	if e.cfg.Quote == QuoteNever {
		return format.AppendInt(buf, off, int64(i+1))
	}
	buf[off] = '"'
	off++
	off = format.AppendInt(buf, off, int64(i+1))
	buf[off] = '"'
	off++
	return off
}

func (e *Encoder) encodeUniformDouble(buf []byte, off int, i int) int {
	last := len(e.cols) - 1
	for c, col := range e.cols {
		off = e.encodeDouble(buf, off, col.Float64At(i))
		if c == last {
			off += copy(buf[off:], e.cfg.RowSep)
		} else {
			buf[off] = e.cfg.ColSep
			off++
		}
	}
	return off
}

func (e *Encoder) encodeUniformInt32(buf []byte, off int, i int) int {
	last := len(e.cols) - 1
	for c, col := range e.cols {
		off = e.encodeInt32(buf, off, col.Int32At(i))
		if c == last {
			off += copy(buf[off:], e.cfg.RowSep)
		} else {
			buf[off] = e.cfg.ColSep
			off++
		}
	}
	return off
}

func (e *Encoder) encodeCell(buf []byte, off int, col ColumnView, i int) int {
	switch col.Kind() {
	case Bool:
		switch col.BoolAt(i) {
		case BoolTrue:
			return off + copy(buf[off:], "TRUE")
		case BoolFalse:
			return off + copy(buf[off:], "FALSE")
		default:
			return off + copy(buf[off:], e.cfg.NAString)
		}
	case Int32:
		return e.encodeInt32(buf, off, col.Int32At(i))
	case Int64:
		bits := col.Int64BitsAt(i)
		if bits == Int64NA {
			return off + copy(buf[off:], e.cfg.NAString)
		}
		if e.cfg.Turbo {
			return format.AppendInt(buf, off, int64(bits))
		}
		return format.AppendIntFallback(buf, off, int64(bits))
	case Double:
		return e.encodeDouble(buf, off, col.Float64At(i))
	case Factor:
		idx := col.FactorAt(i)
		if idx <= 0 {
			return off + copy(buf[off:], e.cfg.NAString)
		}
		level := col.Levels()[idx-1]
		return e.encodeString(buf, off, []byte(level), false)
	case String:
		s, missing := col.StringAt(i)
		return e.encodeString(buf, off, s, missing)
	default:
		// Bound already rejected unsupported kinds before any row is
		// emitted; reaching here is a programming error.
		panic("encode: unsupported column kind reached row encoder")
	}
}

func (e *Encoder) encodeInt32(buf []byte, off int, v int32) int {
	const int32NA = int32(-2147483648) // math.MinInt32
	if v == int32NA {
		return off + copy(buf[off:], e.cfg.NAString)
	}
	return format.AppendInt(buf, off, int64(v))
}

func (e *Encoder) encodeDouble(buf []byte, off int, v float64) int {
	if e.cfg.Turbo {
		return format.AppendFloat(buf, off, v, e.cfg.DecSep, e.cfg.NAString)
	}
	return format.AppendFloatFallback(buf, off, v, e.cfg.DecSep, e.cfg.NAString)
}

func (e *Encoder) encodeString(buf []byte, off int, s []byte, missing bool) int {
	return format.AppendString(buf, off, s, missing, format.QuoteMode(e.cfg.Quote), format.QuoteMethod(e.cfg.QuoteMethod), e.cfg.ColSep, e.cfg.NAString)
}
