// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

// minSplit is the smallest remainder a split is allowed to leave
// behind. Anything smaller would never satisfy a future fit check and
// would just pollute bucket 0.
const minSplit = 64

// allocSize computes the total block size needed to satisfy a user
// request of n bytes: n is clamped to at least 1, rounded up to
// alignment for the payload, then padded with the header/links area
// and footer and rounded up again.
func allocSize(n uintptr) uintptr {
	if n < 1 {
		n = 1
	}
	payload := alignUp(n, alignment)
	return alignUp(payload+payloadOffset+wordSize, alignment)
}

// findFit walks the free lists starting at bucket(need) upward,
// first-fit within each bucket. It returns 0 if no free block
// anywhere is large enough.
func (h *Heap) findFit(need uintptr) uintptr {
	for i := bucket(need); i < numBuckets; i++ {
		for cur := h.free.heads[i]; cur != 0; cur = readNextFree(cur) {
			if sizeOf(readHeader(cur)) >= need {
				return cur
			}
		}
	}
	return 0
}

// split carves the free block b (already known to be >= need bytes)
// down to need bytes, reinserting any sufficiently large remainder as
// its own free block. b is returned marked used at its final size.
func (h *Heap) split(b, need uintptr) uintptr {
	bsz := sizeOf(readHeader(b))
	h.free.remove(b, bsz)

	if bsz >= need+minSplit {
		r := b + need
		rsz := bsz - need
		writeHeader(r, pack(rsz, false))
		writeFooter(r, pack(rsz, false))
		h.free.insert(r, rsz)

		writeHeader(b, pack(need, true))
		writeFooter(b, pack(need, true))
		return b
	}

	writeHeader(b, pack(bsz, true))
	writeFooter(b, pack(bsz, true))
	return b
}
