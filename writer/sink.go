/*
 * fwrite - Output sink: a plain file, or the in-process console.
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

package writer

import (
	"errors"
	"io"
	"os"
)

// sink is the destination for committed batch buffers. A file sink does
// one os.File.Write per batch; the console sink writes text to an
// io.Writer (normally os.Stdout) and forces single-threaded operation.
type sink struct {
	file    *os.File // nil for console
	console io.Writer
}

// openSink attaches to fileName, or to the console if fileName is empty.
// Mirrors util/tape's Attach: pick the open mode up front, distinguish
// "exists but can't be written" from "can't be created" on failure.
func openSink(fileName string, append bool, console io.Writer) (*sink, error) {
	if fileName == "" {
		return &sink{console: console}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(fileName, flags, 0o644)
	if err != nil {
		return nil, &Error{Kind: OpenFailed, Cause: err}
	}
	return &sink{file: f}, nil
}

// PermissionDenied reports whether an OpenFailed error was caused by the
// target existing but not being writable, as opposed to the path simply
// being impossible to create (missing directory, read-only filesystem,
// and so on).
func (e *Error) PermissionDenied() bool {
	return e.Kind == OpenFailed && errors.Is(e.Cause, os.ErrPermission)
}

func (s *sink) isConsole() bool {
	return s.file == nil
}

// commit writes one finished batch buffer in a single call.
func (s *sink) commit(buf []byte) error {
	if s.isConsole() {
		_, err := s.console.Write(buf)
		return err
	}
	_, err := s.file.Write(buf)
	return err
}

// close closes the file sink; a console sink has nothing to close.
func (s *sink) close() error {
	if s.isConsole() {
		return nil
	}
	return s.file.Close()
}
