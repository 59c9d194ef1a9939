/*
 * fwrite - Integer formatter test set.
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
	"testing"
)

func TestAppendInt(t *testing.T) {
	cases := []int64{
		0, 1, -1, 7, -7, 42, -42,
		100, -100, 123456789, -123456789,
		math.MaxInt64, math.MinInt64,
	}
	for _, v := range cases {
		buf := make([]byte, 32)
		n := AppendInt(buf, 0, v)
		got := string(buf[:n])
		want := strconv.FormatInt(v, 10)
		if got != want {
			t.Errorf("AppendInt(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestAppendIntOffset(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 'x'
	n := AppendInt(buf, 1, -305)
	if string(buf[:n]) != "x-305" {
		t.Errorf("AppendInt at offset = %q, want %q", buf[:n], "x-305")
	}
}

func TestAppendIntFallbackMatches(t *testing.T) {
	cases := []int64{0, 1, -1, 999999999999, math.MinInt64, math.MaxInt64}
	for _, v := range cases {
		bufA := make([]byte, 32)
		bufB := make([]byte, 32)
		nA := AppendInt(bufA, 0, v)
		nB := AppendIntFallback(bufB, 0, v)
		if string(bufA[:nA]) != string(bufB[:nB]) {
			t.Errorf("AppendInt/AppendIntFallback disagree for %d: %q vs %q", v, bufA[:nA], bufB[:nB])
		}
	}
}
