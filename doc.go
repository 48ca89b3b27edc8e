// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package allocator implements a thread-safe, general-purpose heap
// allocator over a single contiguous region of anonymous virtual
// memory obtained from the host OS.
//
// The region is framed by boundary-tagged blocks (see codec.go):
// every block carries a header and an identical footer word encoding
// its size and used flag, which lets the free path navigate to a
// block's physical neighbors in O(1) without any side index. Free
// blocks are kept in a fixed array of segregated, size-class free
// lists (see bucket.go, freelist.go); allocation walks the lists
// first-fit starting at the requested size's bucket and, on a hit,
// splits the remainder back into the registry (see split.go). Freeing
// a block always attempts to coalesce with both physical neighbors
// (see coalesce.go), which is what lets a fully-drained heap report
// back to a single free block spanning the whole region.
//
// A single mutex guards all heap state; there are no per-bucket or
// per-block locks, no per-thread caches, and no growth beyond the
// region reserved at Init. The zero value of Heap is ready for use:
// the region is reserved lazily on first Allocate if Init was never
// called.
package allocator

// trace gates one-line diagnostics on paths that can otherwise fail
// silently (OS reservation failure at Init). Off by default; flip
// during local debugging, same as upstream's own trace flag.
const trace = false
