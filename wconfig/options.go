/*
 * fwrite - Configuration surface for one write.
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

// Package wconfig holds the writer's configuration surface: the Options
// struct, its defaults and validation, and the small write-plan text
// format used by the demo CLI.
package wconfig

import "fmt"

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

// Options is the immutable configuration for one write.
type Options struct {
	ColSep      byte
	RowSep      []byte
	DecSep      byte
	NAString    []byte
	Quote       QuoteMode
	QuoteMethod QuoteMethod
	ColNames    bool
	RowNames    bool
	Append      bool
	Turbo       bool
	Threads     int // 0 means runtime.NumCPU()
}

// DefaultOptions returns the package's recommended defaults.
func DefaultOptions() Options {
	return Options{
		ColSep:      ',',
		RowSep:      []byte("\n"),
		DecSep:      '.',
		NAString:    nil,
		Quote:       QuoteAuto,
		QuoteMethod: QuoteEscape,
		ColNames:    true,
		RowNames:    false,
		Append:      false,
		Turbo:       true,
		Threads:     0,
	}
}

// Validate checks the Auto-quoting distinctness invariant on a
// best-effort basis. It does not claim to catch every malformed
// configuration; it exists so obviously broken configurations fail fast
// with a descriptive error instead of undefined row corruption.
func (o Options) Validate() error {
	if len(o.RowSep) == 0 {
		return fmt.Errorf("wconfig: RowSep must not be empty")
	}
	if o.Quote == QuoteAuto {
		rs := o.RowSep[0]
		if o.ColSep == o.DecSep {
			return fmt.Errorf("wconfig: ColSep and DecSep must differ under QuoteAuto, both are %q", o.ColSep)
		}
		if o.ColSep == rs {
			return fmt.Errorf("wconfig: ColSep and RowSep[0] must differ under QuoteAuto, both are %q", o.ColSep)
		}
		if o.ColSep == '"' {
			return fmt.Errorf("wconfig: ColSep must not be the quote character %q under QuoteAuto", o.ColSep)
		}
	}
	return nil
}
