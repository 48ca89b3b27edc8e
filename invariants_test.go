// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type blockInfo struct {
	addr uintptr
	size uintptr
	used bool
}

// walkBlocks tiles h's region from base to base+capacity by header
// sizes.
func walkBlocks(t *testing.T, h *Heap) []blockInfo {
	t.Helper()
	var blocks []blockInfo
	addr := h.base
	end := h.base + h.capacity
	for addr < end {
		word := readHeader(addr)
		size := sizeOf(word)
		require.Greater(t, size, uintptr(0), "zero-size block at %#x", addr)
		require.Equal(t, word, readWord(footerAddr(addr, size)), "header/footer mismatch at %#x", addr)
		blocks = append(blocks, blockInfo{addr: addr, size: size, used: isUsed(word)})
		addr += size
	}
	require.Equal(t, end, addr, "tiling: blocks do not exactly cover the region")
	return blocks
}

// assertInvariants checks the tiling, no-adjacent-free-blocks,
// correct-bucket, and free-list-membership invariants against the
// current state of h.
func assertInvariants(t *testing.T, h *Heap) {
	t.Helper()
	blocks := walkBlocks(t, h)

	for i := 1; i < len(blocks); i++ {
		require.False(t, !blocks[i-1].used && !blocks[i].used,
			"adjacent free blocks at %#x and %#x", blocks[i-1].addr, blocks[i].addr)
	}

	linked := map[uintptr]bool{}
	for i := 0; i < numBuckets; i++ {
		for cur := h.free.heads[i]; cur != 0; cur = readNextFree(cur) {
			linked[cur] = true
			sz := sizeOf(readHeader(cur))
			require.Equal(t, i, bucket(sz), "block %#x of size %d in wrong bucket %d", cur, sz, i)
		}
	}
	for _, b := range blocks {
		require.Equal(t, !b.used, linked[b.addr],
			"block %#x: used=%v but free-list membership=%v", b.addr, b.used, linked[b.addr])
	}
}
