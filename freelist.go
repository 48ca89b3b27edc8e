// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

// freeList is the segregated free-list registry: a fixed array of
// doubly-linked lists of free blocks, indexed by bucket. heads[i]
// holds a block's base address, or 0 for "no free block in this
// bucket" (blocks never legitimately sit at address 0, since the
// region is reserved past the zero page).
type freeList struct {
	heads [numBuckets]uintptr
}

// insert splices b onto the head of its bucket's list (LIFO), so the
// most recently freed block of a given size class is reused first —
// intentional for cache locality on the alloc/free churn path.
func (fl *freeList) insert(b, size uintptr) {
	i := bucket(size)
	head := fl.heads[i]
	writePrevFree(b, 0)
	writeNextFree(b, head)
	if head != 0 {
		writePrevFree(head, b)
	}
	fl.heads[i] = b
}

// remove detaches b from its list using b's own prev/next links,
// without scanning. Calling remove on a block not currently in a
// free list is undefined.
func (fl *freeList) remove(b, size uintptr) {
	prev := readPrevFree(b)
	next := readNextFree(b)
	if prev != 0 {
		writeNextFree(prev, next)
	} else {
		fl.heads[bucket(size)] = next
	}
	if next != 0 {
		writePrevFree(next, prev)
	}
	writePrevFree(b, 0)
	writeNextFree(b, 0)
}
