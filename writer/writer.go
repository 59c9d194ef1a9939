/*
 * fwrite - Ordered parallel batch writer.
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
	"context"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rcornwell/fwrite/encode"
	"github.com/rcornwell/fwrite/wconfig"
)

const bufTarget = 1 << 20 // 1 MiB

// injectOOM lets the test suite force the "buffer allocation failed" path
// without needing a real out-of-memory condition (Go's make panics rather
// than erroring on real OOM, so this is the only way to exercise that
// path at all).
var injectOOM atomic.Bool

// SetOOMInjectionForTesting is a test-only hook; production callers never
// need it.
func SetOOMInjectionForTesting(enabled bool) {
	injectOOM.Store(enabled)
}

// Write formats cols (with optional names and row names) through opts and
// commits the result to fileName, or to console if fileName is empty.
// Output is byte-identical regardless of opts.Threads.
func Write(ctx context.Context, cols []encode.ColumnView, names []string, rowNames encode.RowNames, n int, opts wconfig.Options, fileName string, console io.Writer) error {
	if console == nil {
		console = os.Stdout
	}

	if err := checkShape(cols, n); err != nil {
		return err
	}

	plan, err := encode.Bound(cols, names, rowNames, opts.RowNames, n)
	if err != nil {
		return &Error{Kind: UnsupportedColumnKind, Cause: err}
	}

	s, err := openSink(fileName, opts.Append, console)
	if err != nil {
		return err.(*Error)
	}

	cfg := encode.Config{
		ColSep:      opts.ColSep,
		RowSep:      consoleRowSep(opts.RowSep, s.isConsole()),
		DecSep:      opts.DecSep,
		NAString:    opts.NAString,
		Quote:       encode.QuoteMode(opts.Quote),
		QuoteMethod: encode.QuoteMethod(opts.QuoteMethod),
		RowNames:    opts.RowNames,
		Turbo:       opts.Turbo,
	}
	enc := encode.New(cols, rowNames, cfg, plan)

	if opts.ColNames {
		if werr := writeHeader(s, plan, names, opts, cfg); werr != nil {
			_ = s.close()
			return werr
		}
	}

	if n == 0 {
		if cerr := s.close(); cerr != nil {
			return &Error{Kind: CloseFailed, Cause: cerr}
		}
		return nil
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if s.isConsole() {
		// Console sink constraint: multi-threaded console writes
		// have been observed to interleave unpredictably.
		threads = 1
	}
	if threads > n {
		threads = n
	}

	buf := plan.L
	if bufTarget > buf {
		buf = bufTarget
	}
	batchRows := buf / plan.L
	if batchRows < 1 {
		batchRows = 1
	}
	batches := (n + batchRows - 1) / batchRows

	writeErr := runBatches(ctx, s, enc, n, batchRows, batches, buf, threads, console)

	closeErr := s.close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return &Error{Kind: CloseFailed, Cause: closeErr}
	}
	return nil
}

func checkShape(cols []encode.ColumnView, n int) error {
	for _, c := range cols {
		if c.Len() != n {
			return &Error{Kind: ShapeMismatch}
		}
	}
	return nil
}

// consoleRowSep implements the resolved console behavior: the
// console sink always terminates rows with \n, regardless of the
// configured RowSep.
func consoleRowSep(rowSep []byte, isConsole bool) []byte {
	if isConsole {
		return []byte("\n")
	}
	return rowSep
}

func writeHeader(s *sink, plan *encode.Plan, names []string, opts wconfig.Options, cfg encode.Config) error {
	buf := make([]byte, plan.HeaderL)
	off := 0
	if opts.RowNames {
		if cfg.Quote != encode.QuoteNever {
			off += copy(buf[off:], "\"\"")
		}
		buf[off] = cfg.ColSep
		off++
	}
	for i, name := range names {
		off += headerField(buf, off, name, cfg)
		if i == len(names)-1 {
			off += copy(buf[off:], cfg.RowSep)
		} else {
			buf[off] = cfg.ColSep
			off++
		}
	}
	if len(names) == 0 {
		off += copy(buf[off:], cfg.RowSep)
	}
	if err := s.commit(buf[:off]); err != nil {
		return &Error{Kind: WriteFailed, Cause: err}
	}
	return nil
}

func headerField(buf []byte, off int, name string, cfg encode.Config) int {
	start := off
	needsQuote := cfg.Quote == encode.QuoteAlways
	if cfg.Quote == encode.QuoteAuto {
		for i := 0; i < len(name); i++ {
			if name[i] == cfg.ColSep || name[i] == '\n' {
				needsQuote = true
				break
			}
		}
	}
	if !needsQuote {
		return copy(buf[off:], name)
	}
	buf[off] = '"'
	off++
	for i := 0; i < len(name); i++ {
		b := name[i]
		if cfg.QuoteMethod == encode.QuoteDouble && b == '"' {
			buf[off] = '"'
			off++
			buf[off] = '"'
			off++
			continue
		}
		if cfg.QuoteMethod == encode.QuoteEscape && (b == '"' || b == '\\') {
			buf[off] = '\\'
			off++
		}
		buf[off] = b
		off++
	}
	buf[off] = '"'
	off++
	return off - start
}

// runBatches is the ordered parallel section: a pool of `threads`
// goroutines dynamically claim batch indices, format their rows into a
// private buffer, then commit in strict ascending order via a chain of
// per-batch ticket channels.
func runBatches(ctx context.Context, s *sink, enc *encode.Encoder, n, batchRows, batches, bufSize, threads int, console io.Writer) error {
	var next atomic.Int64
	var failed atomic.Bool
	var failOnce sync.Once
	var failure *Error

	recordFailure := func(e *Error) {
		failOnce.Do(func() {
			failure = e
			failed.Store(true)
		})
	}

	tickets := make([]chan struct{}, batches+1)
	for i := range tickets {
		tickets[i] = make(chan struct{})
	}
	close(tickets[0])

	progress := newProgressLine(console, threads)
	pool := scratchPool(bufSize)

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			var buf []byte
			oom := injectOOM.Load() && workerID == 0

			if !oom {
				buf = pool.Get()
				defer pool.Put(buf)
			}

			for {
				k := int(next.Add(1)) - 1
				if k >= batches {
					return
				}

				rowStart := k * batchRows
				rowEnd := min(n, rowStart+batchRows)

				var off int
				if !failed.Load() && ctx.Err() == nil {
					if oom {
						recordFailure(&Error{Kind: OutOfMemory})
					} else {
						off = 0
						for r := rowStart; r < rowEnd; r++ {
							off = enc.EncodeRow(buf, off, r)
						}
					}
				} else if ctx.Err() != nil {
					recordFailure(&Error{Kind: WriteFailed, Cause: ctx.Err()})
				}

				<-tickets[k]
				if !failed.Load() {
					if werr := s.commit(buf[:off]); werr != nil {
						recordFailure(&Error{Kind: WriteFailed, Cause: werr})
					} else if workerID == 0 {
						progress.update(rowEnd, n)
					}
				}
				close(tickets[k+1])
			}
		}(w)
	}
	wg.Wait()
	progress.clear()

	if failure != nil {
		return failure
	}
	return nil
}
