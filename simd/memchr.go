// Package simd provides word-at-a-time byte search primitives used by the
// seed prefilters.
//
// The routines use SWAR (SIMD Within A Register): eight bytes are loaded into
// a uint64 and tested in parallel with plain integer arithmetic, so they run
// on every GOARCH without assembly.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("ACGTNACGT"), 'N')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle to all 8 lanes: 'N' -> 0x4e4e4e4e4e4e4e4e
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		// A lane is zero iff it held needle. The borrow of the subtraction
		// may flag lanes above a true zero, never below it, so the lowest
		// flagged lane is exact.
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// MemchrAt is Memchr starting at offset at. It returns an absolute index.
func MemchrAt(haystack []byte, needle byte, at int) int {
	if at < 0 {
		at = 0
	}
	if at >= len(haystack) {
		return -1
	}
	pos := Memchr(haystack[at:], needle)
	if pos < 0 {
		return -1
	}
	return at + pos
}
