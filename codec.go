// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocator

import "unsafe"

// wordSize is the machine word: the unit size of the header, footer,
// and the two free-list link fields.
const wordSize = unsafe.Sizeof(uintptr(0))

// alignment is the fixed payload alignment. The low-bit-as-used-flag
// trick in pack/sizeOf/isUsed depends on every block size being a
// multiple of alignment and alignment >= 2.
const alignment = 16

const usedBit = uintptr(1)

func alignUp(n, m uintptr) uintptr { return (n + m - 1) &^ (m - 1) }

// pack encodes size and the used flag into a single header/footer
// word. size must already be a multiple of alignment.
func pack(size uintptr, used bool) uintptr {
	if used {
		return size | usedBit
	}
	return size
}

// sizeOf extracts the block size from a header/footer word.
func sizeOf(word uintptr) uintptr { return word &^ usedBit }

// isUsed extracts the used flag from a header/footer word.
func isUsed(word uintptr) bool { return word&usedBit != 0 }

func readWord(addr uintptr) uintptr     { return *(*uintptr)(unsafe.Pointer(addr)) }
func writeWord(addr uintptr, v uintptr) { *(*uintptr)(unsafe.Pointer(addr)) = v }

// readHeader/writeHeader operate on the header word at a block's base.
func readHeader(b uintptr) uintptr        { return readWord(b) }
func writeHeader(b uintptr, word uintptr) { writeWord(b, word) }

// footerAddr locates the footer word of a block of the given size.
func footerAddr(b, size uintptr) uintptr { return b + size - wordSize }

// writeFooter writes word (the same encoded header word — header and
// footer must carry an identical copy) to the footer slot implied by
// word's own size field.
func writeFooter(b uintptr, word uintptr) {
	writeWord(footerAddr(b, sizeOf(word)), word)
}

// readPrecedingFooter reads the footer word immediately preceding address b,
// i.e. the footer of whatever block physically ends at b. Used by the
// left-coalesce step in coalesce.go.
func readPrecedingFooter(b uintptr) uintptr { return readWord(b - wordSize) }

// Free blocks thread their own doubly-linked free-list pointers
// through the payload area, at offsets W and 2W past the block base.
func prevFreeAddr(b uintptr) uintptr { return b + wordSize }
func nextFreeAddr(b uintptr) uintptr { return b + 2*wordSize }

func readPrevFree(b uintptr) uintptr  { return readWord(prevFreeAddr(b)) }
func writePrevFree(b, v uintptr)      { writeWord(prevFreeAddr(b), v) }
func readNextFree(b uintptr) uintptr  { return readWord(nextFreeAddr(b)) }
func writeNextFree(b, v uintptr)      { writeWord(nextFreeAddr(b), v) }

// payloadOffset is the fixed distance from a block's base to its
// payload, large enough to hold the header word plus both free-list
// link words, rounded up to alignment.
var payloadOffset = alignUp(3*wordSize, alignment)

// minBlockSize is the smallest block that can ever be freed: it must
// have room for its links and footer even though it is currently used
// and its payload may occupy that same space.
var minBlockSize = payloadOffset + wordSize
