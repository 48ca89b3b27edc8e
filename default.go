// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import "unsafe"

// defaultHeap is the process-wide heap instance. It backs the
// package-level functions below and, through them, the cgo-exported C
// symbols in cmd/tsallocshim: heap base, capacity, bucket heads, and
// mutex as one process-wide aggregate with lifecycle
// {uninitialized -> initialized-once; never torn down}, initialized
// lazily on first use.
var defaultHeap Heap

// HeapInit is the package-level entry point for heap_init.
func HeapInit(bytes uintptr) { defaultHeap.Init(bytes) }

// Malloc is the package-level entry point for allocate.
func Malloc(size uintptr) unsafe.Pointer { return defaultHeap.Allocate(size) }

// FreePtr is the package-level entry point for free.
func FreePtr(p unsafe.Pointer) { defaultHeap.Free(p) }

// Realloc is the package-level entry point for reallocate.
func Realloc(p unsafe.Pointer, newSize uintptr) unsafe.Pointer {
	return defaultHeap.Reallocate(p, newSize)
}

// Calloc is the package-level entry point for zero_allocate.
func Calloc(count, elemSize uintptr) unsafe.Pointer {
	return defaultHeap.ZeroAllocate(count, elemSize)
}

// HeapStats is the package-level entry point for stats.
func HeapStats() (total, free, largestFree uintptr) { return defaultHeap.Stats() }
