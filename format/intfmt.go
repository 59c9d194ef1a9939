/*
 * fwrite - Hand-rolled signed 64-bit integer formatter.
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

// Package format holds the zero-allocation integer/float/string formatters
// used by the row encoder's turbo path, plus the stdlib-backed fallbacks
// used when turbo mode is off.
package format

import "strconv"

// AppendInt writes v in decimal, ASCII, minimal-width, into buf at off and
// returns the new offset. buf must have enough room (the caller sizes it
// from the line bound); no bounds checking is done in this hot path.
func AppendInt(buf []byte, off int, v int64) int {
	if v == 0 {
		buf[off] = '0'
		return off + 1
	}

	neg := v < 0
	if neg {
		buf[off] = '-'
		off++
	}

	digitsStart := off
	// Work with an unsigned magnitude so math.MinInt64 doesn't overflow
	// on negation.
	u := uint64(v)
	if neg {
		u = -u
	}
	for u > 0 {
		buf[off] = byte('0' + u%10)
		off++
		u /= 10
	}

	reverse(buf[digitsStart:off])
	return off
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// AppendIntFallback formats v the same way via strconv, for Turbo=false.
func AppendIntFallback(buf []byte, off int, v int64) int {
	s := strconv.AppendInt(buf[off:off], v, 10)
	return off + len(s)
}
