// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import "github.com/cznic/mathutil"

// numBuckets is the number of segregated free-list size classes.
const numBuckets = 10

// bucket maps a block size to one of numBuckets segregated free-list
// indices, with edges:
//
//	[0,64) [64,128) [128,256) [256,512) [512,1024)
//	[1024,2048) [2048,4096) [4096,8192) [8192,16384) [16384,∞)
//
// Every edge above 64 is a power of two, so instead of a linear scan
// over the edge table this substitutes a floor(log2)-based
// computation: bucket i (1 <= i <= 8) covers sizes in
// [1<<(i+5), 1<<(i+6)), so i = floor(log2(size)) - 5.
func bucket(size uintptr) int {
	if size < 64 {
		return 0
	}
	if size >= 16384 {
		return numBuckets - 1
	}
	log := mathutil.BitLen(int(size)) - 1
	return log - 5
}
