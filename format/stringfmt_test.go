/*
 * fwrite - String formatter test set.
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

import "testing"

func appendStringResult(s string, missing bool, quote QuoteMode, method QuoteMethod, colSep byte, na string) string {
	buf := make([]byte, 256)
	n := AppendString(buf, 0, []byte(s), missing, quote, method, colSep, []byte(na))
	return string(buf[:n])
}

func TestAppendStringAutoQuotesOnlyWhenNeeded(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"a,b", `"a,b"`},
		{"c\"d", `c"d`},
		{"e", "e"},
		{"has\nnewline", "\"has\nnewline\""},
	}
	for _, c := range cases {
		got := appendStringResult(c.s, false, QuoteAuto, QuoteEscape, ',', "")
		if got != c.want {
			t.Errorf("AppendString(%q, Auto) = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestAppendStringAlwaysDouble(t *testing.T) {
	got := appendStringResult(`c"d`, false, QuoteAlways, QuoteDouble, ',', "")
	want := `"c""d"`
	if got != want {
		t.Errorf("AppendString(AlwaysDouble) = %q, want %q", got, want)
	}
}

func TestAppendStringAlwaysEscape(t *testing.T) {
	got := appendStringResult(`c"d\e`, false, QuoteAlways, QuoteEscape, ',', "")
	want := `"c\"d\\e"`
	if got != want {
		t.Errorf("AppendString(AlwaysEscape) = %q, want %q", got, want)
	}
}

func TestAppendStringMissingIgnoresQuoteMode(t *testing.T) {
	got := appendStringResult("ignored", true, QuoteAlways, QuoteDouble, ',', "NA")
	if got != "NA" {
		t.Errorf("AppendString(missing) = %q, want %q", got, "NA")
	}
}

func TestAppendStringNever(t *testing.T) {
	got := appendStringResult("a,b", false, QuoteNever, QuoteEscape, ',', "")
	if got != "a,b" {
		t.Errorf("AppendString(Never) = %q, want %q", got, "a,b")
	}
}

// TestAppendStringEscapeIdempotence checks property 5: under QuoteDouble,
// halving every doubled quote in the emitted field recovers the original
// string.
func TestAppendStringEscapeIdempotence(t *testing.T) {
	inputs := []string{`plain`, `has "quotes" inside`, `"""`, `a,b"c`}
	for _, in := range inputs {
		got := appendStringResult(in, false, QuoteAlways, QuoteDouble, ',', "")
		inner := got[1 : len(got)-1]
		halved := halveDoubledQuotes(inner)
		if halved != in {
			t.Errorf("escape idempotence failed for %q: got field %q, halved back to %q", in, got, halved)
		}
	}
}

func halveDoubledQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == '"' && i+1 < len(s) && s[i+1] == '"' {
			i++
		}
	}
	return string(out)
}
