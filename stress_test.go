// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import (
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/cznic/mathutil"
	"github.com/stretchr/testify/require"
)

// randSize mirrors tests/correctness.c's rand_size: mostly small,
// sometimes medium, rarely a big block.
func randSize(rng *mathutil.FC32) uintptr {
	r := rng.Next() & 1023
	switch {
	case r < 700:
		return uintptr(16 + rng.Next()%112)
	case r < 950:
		return uintptr(128 + rng.Next()%(32*1024))
	default:
		return uintptr(33*1024 + rng.Next()%(64*1024))
	}
}

// TestConcurrentChurnRestoresSingleBlock runs N goroutines each
// churning random allocate/free over a disjoint slot table; after
// every goroutine joins and the remaining pointers are drained, the
// heap must report back to exactly one free block spanning the whole
// region.
func TestConcurrentChurnRestoresSingleBlock(t *testing.T) {
	if testing.Short() {
		t.Skip("soak test; skipped with -short")
	}

	h := newTestHeap(t, 16<<20)

	const (
		goroutines = 8
		slots      = 8192
		ops        = 20000 // scaled down from correctness.c's 200000 for test runtime
	)

	var wg sync.WaitGroup
	tables := make([][]unsafe.Pointer, goroutines)
	for g := 0; g < goroutines; g++ {
		tables[g] = make([]unsafe.Pointer, slots)
	}

	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng, err := mathutil.NewFC32(0, math.MaxInt32, true)
			require.NoError(t, err)
			rng.Seed(0xC0FFEE + g*1337)

			table := tables[g]
			for i := 0; i < ops; i++ {
				idx := rng.Next() % slots
				if table[idx] != nil {
					h.Free(table[idx])
					table[idx] = nil
					continue
				}
				sz := randSize(rng)
				p := h.Allocate(sz)
				if p != nil {
					n := sz
					if n > 64 {
						n = 64
					}
					b := unsafe.Slice((*byte)(p), n)
					for i := range b {
						b[i] = 0xA5
					}
					table[idx] = p
				}
			}
		}()
	}
	wg.Wait()

	for _, table := range tables {
		for _, p := range table {
			h.Free(p)
		}
	}

	total, free, largest := h.Stats()
	require.Equal(t, total, free, "fragmentation/leak: free != total")
	require.Equal(t, total, largest, "fragmentation/leak: largest_free != total")
	assertInvariants(t, h)
}
