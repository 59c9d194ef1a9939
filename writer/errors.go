/*
 * fwrite - Terminal error kinds surfaced by a write.
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

// Package writer implements the ordered parallel batch writer and the
// sink abstraction that sit below the row encoder.
package writer

import "fmt"

type ErrorKind int

const (
	ShapeMismatch ErrorKind = iota + 1
	UnsupportedColumnKind
	OpenFailed
	OutOfMemory
	WriteFailed
	CloseFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeMismatch:
		return "ShapeMismatch"
	case UnsupportedColumnKind:
		return "UnsupportedColumnKind"
	case OpenFailed:
		return "OpenFailed"
	case OutOfMemory:
		return "OutOfMemory"
	case WriteFailed:
		return "WriteFailed"
	case CloseFailed:
		return "CloseFailed"
	default:
		return "Unknown"
	}
}

// Error is the single error type a Write call can return. All kinds are
// terminal: the caller gets no partial-success signal, only a kind and an
// optional wrapped cause.
type Error struct {
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fwrite: %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("fwrite: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
