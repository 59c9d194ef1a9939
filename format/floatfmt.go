/*
 * fwrite - Hand-rolled IEEE-754 double formatter.
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

import (
	"math"
	"strconv"
)

// AppendFloat writes v into buf at off using the turbo (table-driven)
// algorithm and returns the new offset. No math.Log10/Pow/Ldexp or
// strconv/fmt calls happen on this path for normal values; subnormals are
// the one exception and go through strconv (see below). See floattables.go
// for where the exponent/significand tables come from.
func AppendFloat(buf []byte, off int, v float64, decSep byte, naString []byte) int {
	bits := math.Float64bits(v)
	e := int((bits >> 52) & 0x7FF)
	frac := bits & ((1 << 52) - 1)

	if e == 0x7FF {
		if frac != 0 {
			return off + copy(buf[off:], naString)
		}
		if bits>>63 == 1 {
			return off + copy(buf[off:], "-Inf")
		}
		return off + copy(buf[off:], "Inf")
	}

	if v == 0 {
		buf[off] = '0'
		return off + 1
	}

	neg := bits>>63 == 1
	if neg {
		buf[off] = '-'
		off++
	}

	if e == 0 {
		// Subnormal: the table assumes a normalized 1.xxx * 2^(e-1023)
		// mantissa, which doesn't hold here. Subnormals are vanishingly
		// rare in practice (|v| < ~2.2e-308); fall back to the stdlib
		// path for just this case rather than building a second table.
		return appendFloatStdlib(buf, off, math.Abs(v), decSep)
	}

	a := 0.0
	for bitpos := 0; bitpos < 52; bitpos++ {
		if frac&(1<<uint(bitpos)) != 0 {
			a += sigparts[52-bitpos]
		}
	}

	sig := expsig[e]
	pw := exppow[e]
	y := (1 + a) * sig
	if y >= 10 {
		y /= 10
		pw++
	}

	l := int64(y * 1e15)
	d := l % 10
	l /= 10
	if d >= 5 {
		l++
	}
	if l >= 1000000000000000 {
		l /= 10
		pw++
	}

	sf := 15
	for sf > 1 && l%10 == 0 {
		l /= 10
		sf--
	}

	return appendSignificand(buf, off, l, sf, pw, decSep)
}

// appendSignificand renders the sf-digit integer l (most significant digit
// first) with decimal exponent pw, choosing decimal or scientific form by
// width, and writes it starting at off.
func appendSignificand(buf []byte, off int, l int64, sf int, pw int, decSep byte) int {
	var digits [15]byte
	for i := sf - 1; i >= 0; i-- {
		digits[i] = byte('0' + l%10)
		l /= 10
	}

	decW := decimalWidth(sf, pw)
	sciW := sf
	if sf > 1 {
		sciW++
	}
	sciW += 2
	if abs(pw) > 99 {
		sciW += 3
	} else {
		sciW += 2
	}

	if decW <= sciW {
		return appendDecimalDigits(buf, off, digits[:sf], pw, decSep)
	}
	return appendScientificDigits(buf, off, digits[:sf], pw, decSep)
}

func decimalWidth(sf, exp int) int {
	if exp >= 0 {
		if exp+1 >= sf {
			return exp + 1
		}
		return sf + 1
	}
	return 2 + (-exp - 1) + sf
}

func appendDecimalDigits(buf []byte, off int, digits []byte, exp int, decSep byte) int {
	sf := len(digits)
	if exp >= 0 {
		intDigits := exp + 1
		if intDigits >= sf {
			off += copy(buf[off:], digits)
			for i := 0; i < intDigits-sf; i++ {
				buf[off] = '0'
				off++
			}
			return off
		}
		off += copy(buf[off:], digits[:intDigits])
		buf[off] = decSep
		off++
		off += copy(buf[off:], digits[intDigits:])
		return off
	}
	buf[off] = '0'
	off++
	buf[off] = decSep
	off++
	for i := 0; i < -exp-1; i++ {
		buf[off] = '0'
		off++
	}
	off += copy(buf[off:], digits)
	return off
}

func appendScientificDigits(buf []byte, off int, digits []byte, exp int, decSep byte) int {
	buf[off] = digits[0]
	off++
	if len(digits) > 1 {
		buf[off] = decSep
		off++
		off += copy(buf[off:], digits[1:])
	}
	buf[off] = 'e'
	off++
	if exp < 0 {
		buf[off] = '-'
	} else {
		buf[off] = '+'
	}
	off++
	return off + appendExp2or3(buf[off:], abs(exp))
}

// appendExp2or3 writes n zero-padded to 2 digits, or 3 if n > 99.
func appendExp2or3(buf []byte, n int) int {
	if n > 99 {
		buf[0] = byte('0' + n/100)
		n %= 100
		buf[1] = byte('0' + n/10)
		buf[2] = byte('0' + n%10)
		return 3
	}
	buf[0] = byte('0' + n/10)
	buf[1] = byte('0' + n%10)
	return 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// AppendFloatFallback formats v via strconv for Turbo=false, still honoring
// NA/Inf/DecSep/no-leading-+ conventions.
func AppendFloatFallback(buf []byte, off int, v float64, decSep byte, naString []byte) int {
	if math.IsNaN(v) {
		return off + copy(buf[off:], naString)
	}
	if math.IsInf(v, 1) {
		return off + copy(buf[off:], "Inf")
	}
	if math.IsInf(v, -1) {
		return off + copy(buf[off:], "-Inf")
	}
	if v == 0 {
		buf[off] = '0'
		return off + 1
	}
	neg := math.Signbit(v)
	if neg {
		buf[off] = '-'
		off++
	}
	return appendFloatStdlib(buf, off, math.Abs(v), decSep)
}

func appendFloatStdlib(buf []byte, off int, v float64, decSep byte) int {
	s := strconv.AppendFloat(buf[off:off], v, 'g', 15, 64)
	n := off + len(s)
	if decSep != '.' {
		for i := off; i < n; i++ {
			if buf[i] == '.' {
				buf[i] = decSep
			}
		}
	}
	return n
}
