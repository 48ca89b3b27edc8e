// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

// freeBlock clears the used flag on b, merges with whichever physical
// neighbors are free, and inserts the resulting (possibly enlarged)
// block into its bucket. Merge order (right before left) is
// arbitrary; both are always attempted, which is what keeps "no two
// adjacent free blocks" true after every free.
func (h *Heap) freeBlock(b uintptr) {
	word := readHeader(b)
	if !isUsed(word) {
		// Double free: silently ignored.
		return
	}

	size := sizeOf(word)
	writeHeader(b, pack(size, false))
	writeFooter(b, pack(size, false))

	if right := b + size; right < h.base+h.capacity {
		rw := readHeader(right)
		if !isUsed(rw) {
			rsz := sizeOf(rw)
			h.free.remove(right, rsz)
			size += rsz
			writeHeader(b, pack(size, false))
			writeFooter(b, pack(size, false))
		}
	}

	if b > h.base {
		prevWord := readPrecedingFooter(b)
		if !isUsed(prevWord) {
			lsz := sizeOf(prevWord)
			left := b - lsz
			h.free.remove(left, lsz)
			size += lsz
			writeHeader(left, pack(size, false))
			writeFooter(left, pack(size, false))
			b = left
		}
	}

	h.free.insert(b, size)
}
