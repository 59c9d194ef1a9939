/*
 * fwrite - In-place console progress line.
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
	"fmt"
	"io"
	"time"
)

// progressLine rewrites a single console line in place (carriage-return
// prefix) describing percent complete, elapsed seconds, goroutine count
// and ETA, at most once per second and only after 2 seconds have elapsed.
type progressLine struct {
	out       io.Writer
	start     time.Time
	lastPrint time.Time
	threads   int
	shown     bool
}

func newProgressLine(out io.Writer, threads int) *progressLine {
	now := time.Now()
	return &progressLine{out: out, start: now, lastPrint: now, threads: threads}
}

func (p *progressLine) update(done, total int) {
	now := time.Now()
	elapsed := now.Sub(p.start)
	if elapsed < 2*time.Second {
		return
	}
	if now.Sub(p.lastPrint) < time.Second && p.shown {
		return
	}
	p.lastPrint = now
	p.shown = true

	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	var eta time.Duration
	if done > 0 {
		eta = elapsed * time.Duration(total-done) / time.Duration(done)
	}
	fmt.Fprintf(p.out, "\r%d%% done, %ds elapsed, %d threads, ETA %ds  ",
		pct, int(elapsed.Seconds()), p.threads, int(eta.Seconds()))
}

// clear erases the progress line once the write completes.
func (p *progressLine) clear() {
	if !p.shown {
		return
	}
	fmt.Fprint(p.out, "\r")
	for i := 0; i < 60; i++ {
		fmt.Fprint(p.out, " ")
	}
	fmt.Fprint(p.out, "\r")
}
