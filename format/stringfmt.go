/*
 * fwrite - Quoted string field formatter.
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

package format

// QuoteMode and QuoteMethod mirror encode.QuoteMode/QuoteMethod with the
// same underlying values; kept here so format has no dependency on encode.
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

// AppendString writes s, applying the configured quoting policy, and
// returns the new offset. Missing values are always rendered as naString,
// unquoted, regardless of quote mode.
func AppendString(buf []byte, off int, s []byte, missing bool, quote QuoteMode, method QuoteMethod, colSep byte, naString []byte) int {
	if missing {
		return off + copy(buf[off:], naString)
	}

	switch quote {
	case QuoteNever:
		return off + copy(buf[off:], s)
	case QuoteAlways:
		return appendQuoted(buf, off, s, method)
	default: // QuoteAuto
		needsQuote := false
		for _, b := range s {
			if b == colSep || b == '\n' {
				needsQuote = true
				break
			}
		}
		if !needsQuote {
			return off + copy(buf[off:], s)
		}
		return appendQuoted(buf, off, s, method)
	}
}

func appendQuoted(buf []byte, off int, s []byte, method QuoteMethod) int {
	buf[off] = '"'
	off++
	for _, b := range s {
		switch {
		case method == QuoteDouble && b == '"':
			buf[off] = '"'
			off++
			buf[off] = '"'
			off++
		case method == QuoteEscape && (b == '"' || b == '\\'):
			buf[off] = '\\'
			off++
			buf[off] = b
			off++
		default:
			buf[off] = b
			off++
		}
	}
	buf[off] = '"'
	off++
	return off
}
