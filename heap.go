// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// defaultHeapSize is substituted when Init is called with bytes == 0.
const defaultHeapSize = 16 << 20 // 16 MiB

const maxUintptr = ^uintptr(0)

// Heap is a thread-safe boundary-tagged allocator over a single
// contiguous region of anonymous virtual memory. Its zero value is
// ready for use; the region is reserved lazily, either by an explicit
// Init call or by the first Allocate/ZeroAllocate/Reallocate that
// needs one.
type Heap struct {
	mu       sync.Mutex
	region   []byte // backing store; nil until initialized
	base     uintptr
	capacity uintptr
	free     freeList
}

// Init reserves bytes (rounded up to alignment; 0 substitutes the
// 16 MiB default) of OS memory and seeds the free-list registry with
// one free block spanning the whole region. Init is idempotent: a
// heap that already has a region is left untouched, even if bytes
// differs from the original call. If the OS reservation fails, the
// heap is left uninitialized; the next Allocate then retries the
// reservation at the 16 MiB default and returns nil if that fails too.
func (h *Heap) Init(bytes uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.initLocked(bytes)
}

func (h *Heap) initLocked(bytes uintptr) {
	if h.region != nil {
		return
	}
	if bytes == 0 {
		bytes = defaultHeapSize
	}
	bytes = alignUp(bytes, alignment)

	region, err := reserve(int(bytes))
	if err != nil {
		if trace {
			fmt.Fprintf(os.Stderr, "allocator: heap_init(%d): %v\n", bytes, err)
		}
		return
	}

	h.region = region
	h.base = uintptr(unsafe.Pointer(&region[0]))
	h.capacity = bytes
	h.free = freeList{}

	writeHeader(h.base, pack(bytes, false))
	writeFooter(h.base, pack(bytes, false))
	h.free.insert(h.base, bytes)
}

// Allocate returns a pointer to at least size bytes of
// unspecified-content memory, or nil if no free block is large
// enough. A heap with no region yet is lazily initialized at the
// 16 MiB default.
func (h *Heap) Allocate(size uintptr) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocateLocked(size)
}

func (h *Heap) allocateLocked(size uintptr) unsafe.Pointer {
	if h.region == nil {
		h.initLocked(0)
		if h.region == nil {
			return nil
		}
	}

	need := allocSize(size)
	b := h.findFit(need)
	if b == 0 {
		return nil
	}
	b = h.split(b, need)
	return unsafe.Pointer(b + payloadOffset)
}

// Free releases a pointer previously returned by Allocate,
// Reallocate, or ZeroAllocate. Freeing nil is a no-op; freeing a
// pointer whose block is already free is silently ignored rather than
// corrupting the free list.
func (h *Heap) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.freeLocked(p)
}

func (h *Heap) freeLocked(p unsafe.Pointer) {
	h.freeBlock(uintptr(p) - payloadOffset)
}

// Reallocate resizes the block at p to newSize bytes. p == nil
// behaves as Allocate(newSize); newSize == 0 behaves as Free(p) and
// returns nil. Otherwise it allocates a new block, copies
// min(newSize, old payload size) bytes, frees the old block, and
// returns the new pointer. If the new allocation fails, the original
// block is left intact and nil is returned.
func (h *Heap) Reallocate(p unsafe.Pointer, newSize uintptr) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p == nil {
		return h.allocateLocked(newSize)
	}
	if newSize == 0 {
		h.freeLocked(p)
		return nil
	}

	np := h.allocateLocked(newSize)
	if np == nil {
		return nil
	}

	b := uintptr(p) - payloadOffset
	oldPayload := sizeOf(readHeader(b)) - payloadOffset - wordSize
	n := oldPayload
	if newSize < n {
		n = newSize
	}
	copyBytes(np, p, n)
	h.freeLocked(p)
	return np
}

// ZeroAllocate allocates count*elemSize bytes and zero-fills exactly
// that many bytes of the returned payload before returning. Unlike
// the C original this rejects an overflowing count*elemSize product
// by returning nil rather than silently wrapping — see DESIGN.md for
// the rationale.
func (h *Heap) ZeroAllocate(count, elemSize uintptr) unsafe.Pointer {
	if count != 0 && elemSize > maxUintptr/count {
		return nil
	}
	total := count * elemSize

	h.mu.Lock()
	defer h.mu.Unlock()

	p := h.allocateLocked(total)
	if p == nil {
		return nil
	}
	zeroBytes(p, total)
	return p
}

// Stats reports the heap's total capacity, the sum of free block
// sizes across all buckets, and the size of the largest free block.
// It walks every free block under the lock, so it is O(F) in the
// number of free blocks.
func (h *Heap) Stats() (total, free, largestFree uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()

	total = h.capacity
	for i := 0; i < numBuckets; i++ {
		for cur := h.free.heads[i]; cur != 0; cur = readNextFree(cur) {
			sz := sizeOf(readHeader(cur))
			free += sz
			if sz > largestFree {
				largestFree = sz
			}
		}
	}
	return total, free, largestFree
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func zeroBytes(p unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = 0
	}
}
