/*
 * fwrite - Float formatter test set.
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

func appendFloatString(v float64) string {
	buf := make([]byte, 64)
	n := AppendFloat(buf, 0, v, '.', []byte(""))
	return string(buf[:n])
}

func TestAppendFloatConcreteScenarios(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{3.1416, "3.1416"},
		{30460, "30460"},
		{0.0072, "0.0072"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
		{1e-300, "1e-300"},
		{1e300, "1e+300"},
		{0, "0"},
		{math.Copysign(0, -1), "0"}, // negative zero
	}
	for _, c := range cases {
		got := appendFloatString(c.v)
		if got != c.want {
			t.Errorf("AppendFloat(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestAppendFloatNaNUsesNAString(t *testing.T) {
	buf := make([]byte, 64)
	n := AppendFloat(buf, 0, math.NaN(), '.', []byte("NA"))
	if string(buf[:n]) != "NA" {
		t.Errorf("AppendFloat(NaN) = %q, want %q", buf[:n], "NA")
	}
}

func TestAppendFloatDecSep(t *testing.T) {
	buf := make([]byte, 64)
	n := AppendFloat(buf, 0, 3.5, ',', []byte(""))
	if string(buf[:n]) != "3,5" {
		t.Errorf("AppendFloat with DecSep=',' = %q, want %q", buf[:n], "3,5")
	}
}

func TestAppendFloatNoLeadingPlus(t *testing.T) {
	got := appendFloatString(42.0)
	if got[0] == '+' {
		t.Errorf("AppendFloat(%v) = %q, leading + not allowed", 42.0, got)
	}
}

// TestAppendFloatRoundTrip checks that enough significant figures survive
// that parsing the formatted text back recovers the original value within
// the 15-significant-figure guarantee.
func TestAppendFloatRoundTrip(t *testing.T) {
	values := []float64{
		1.0, 0.1, 123456789.123456, 2.718281828459045,
		6.02214076e23, 1.602176634e-19, 9999999999999.9,
	}
	for _, v := range values {
		got := appendFloatString(v)
		parsed, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("formatted value %q did not parse back: %v", got, err)
		}
		if relDiff(parsed, v) > 1e-14 {
			t.Errorf("round trip for %v: got %q back as %v, relative diff too large", v, got, parsed)
		}
	}
}

// TestAppendFloatMatchesStrconvFullPrecision compares the turbo formatter
// directly against strconv.FormatFloat's shortest round-trip digits, laid
// out the way the formatter chooses: decimal ('f') unless scientific ('e')
// is strictly shorter. The
// contract rounds to 15 significant figures, so the sweep is restricted to
// values whose shortest round-trip representation needs no more than that;
// values that genuinely need 16-17 digits (e.g. math.E) are out of scope
// for a byte-exact comparison and are covered by TestAppendFloatRoundTrip
// instead. A wrong sigparts/expsig/exppow entry would still show up here as
// a mismatch on the affected exponent range.
func TestAppendFloatMatchesStrconvFullPrecision(t *testing.T) {
	values := []float64{
		0, 1, -1, 42, 100.25, 3.1416, 30460, 0.0072,
		123.456, 0.5, 2.5, 1000000, -3.75, 17, 1.5, 0.125,
		6.25e10, 9.5e-10, 1e-300, 1e300, 1e21, 1e-21,
		123456789, 0.000001, 2.5e-5, 7.125, -0.001,
	}
	for _, v := range values {
		got := appendFloatString(v)
		want := strconv.FormatFloat(v, 'f', -1, 64)
		if sci := strconv.FormatFloat(v, 'e', -1, 64); len(sci) < len(want) {
			want = sci
		}
		if got != want {
			t.Errorf("AppendFloat(%v) = %q, want %q (strconv.FormatFloat)", v, got, want)
		}
	}
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	d := math.Abs(a - b)
	m := math.Max(math.Abs(a), math.Abs(b))
	if m == 0 {
		return d
	}
	return d / m
}
