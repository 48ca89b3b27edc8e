// Command tsallocshim re-exports the allocator package under the
// original C symbol names from allocator.h, so that benchmark and
// correctness harnesses written in C (or any language that can link a
// C ABI) can drive this implementation directly. Build with:
//
//	go build -buildmode=c-shared -o libtsalloc.so ./cmd/tsallocshim
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/A-MAPHER/thread-safe-allocator"
)

//export ts_heap_init
func ts_heap_init(bytes C.size_t) {
	allocator.HeapInit(uintptr(bytes))
}

//export ts_malloc
func ts_malloc(size C.size_t) unsafe.Pointer {
	return allocator.Malloc(uintptr(size))
}

//export ts_free
func ts_free(ptr unsafe.Pointer) {
	allocator.FreePtr(ptr)
}

//export ts_realloc
func ts_realloc(ptr unsafe.Pointer, n C.size_t) unsafe.Pointer {
	return allocator.Realloc(ptr, uintptr(n))
}

//export ts_calloc
func ts_calloc(nmemb, size C.size_t) unsafe.Pointer {
	return allocator.Calloc(uintptr(nmemb), uintptr(size))
}

//export ts_heap_stats
func ts_heap_stats(outTotal, outFree, outLargest *C.size_t) {
	total, free, largest := allocator.HeapStats()
	if outTotal != nil {
		*outTotal = C.size_t(total)
	}
	if outFree != nil {
		*outFree = C.size_t(free)
	}
	if outLargest != nil {
		*outLargest = C.size_t(largest)
	}
}

func main() {}
