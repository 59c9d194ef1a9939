/*
 * fwrite - Buffer pool test set.
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

import "testing"

func TestBufferPoolGetReturnsRequestedSize(t *testing.T) {
	bp := NewBufferPool(128)
	buf := bp.Get()
	if len(buf) != 128 {
		t.Fatalf("len(buf) = %d, want 128", len(buf))
	}
}

func TestBufferPoolReusesPutBuffers(t *testing.T) {
	bp := NewBufferPool(64)
	first := bp.Get()
	first[0] = 0xAB
	bp.Put(first)

	second := bp.Get()
	if &second[0] != &first[0] {
		t.Skip("sync.Pool gave back a different backing array; not a reuse failure")
	}
	if second[0] != 0xAB {
		t.Errorf("reused buffer lost its contents")
	}
}

func TestScratchPoolCachesBySize(t *testing.T) {
	a := scratchPool(4096)
	b := scratchPool(4096)
	if a != b {
		t.Error("scratchPool returned different pools for the same size")
	}

	c := scratchPool(8192)
	if a == c {
		t.Error("scratchPool returned the same pool for different sizes")
	}
}

func TestScratchPoolBuffersAreRightSized(t *testing.T) {
	bp := scratchPool(256)
	buf := bp.Get()
	defer bp.Put(buf)
	if len(buf) != 256 {
		t.Errorf("len(buf) = %d, want 256", len(buf))
	}
}
