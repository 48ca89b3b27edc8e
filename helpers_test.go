// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

// closeForTest releases the OS region backing h. The public façade has
// no such operation (the region lives until process exit), but
// without it every heap test in this package would leak a real mmap'd region
// for the lifetime of the test binary.
func (h *Heap) closeForTest() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.region == nil {
		return
	}
	release(h.region)
	*h = Heap{}
}
