/*
 * fwrite - Reusable per-goroutine scratch buffers.
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

import "sync"

// BufferPool hands out byte slices of a fixed size, for callers that issue
// repeated writes through the same writer configuration (the interactive
// prompt's "write" command, run over and over against the same table, is
// the intended user). Each runBatches worker goroutine gets its scratch
// buffer from a pool rather than allocating fresh, so a process doing many
// writes in a row isn't paying GC pressure for scratch space that's the
// same size every time.
type BufferPool struct {
	size int
	pool sync.Pool
}

func NewBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		return make([]byte, bp.size)
	}
	return bp
}

func (bp *BufferPool) Get() []byte {
	buf := bp.pool.Get().([]byte)
	if cap(buf) < bp.size {
		return make([]byte, bp.size)
	}
	return buf[:bp.size]
}

func (bp *BufferPool) Put(buf []byte) {
	bp.pool.Put(buf) //nolint:staticcheck // fixed-size slices, no pointer-ness concern here
}

// scratchPools caches one BufferPool per distinct buffer size, since
// successive Write calls (e.g. the prompt's "write" command run
// repeatedly) tend to reuse the same plan.L-derived size.
var scratchPools sync.Map // int -> *BufferPool

// scratchPool returns the shared BufferPool for size, creating it on first
// use.
func scratchPool(size int) *BufferPool {
	if v, ok := scratchPools.Load(size); ok {
		return v.(*BufferPool)
	}
	bp := NewBufferPool(size)
	actual, _ := scratchPools.LoadOrStore(size, bp)
	return actual.(*BufferPool)
}
