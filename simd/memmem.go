package simd

import "bytes"

// Finder searches for a fixed needle. The rare anchor byte is chosen once
// at construction, so a Finder is meant to be built at compile time and
// shared by many searches. A Finder is immutable and safe for concurrent use.
type Finder struct {
	needle  []byte
	rare    byte
	rareIdx int
}

// NewFinder builds a Finder for needle, choosing the anchor byte with ranks.
// A nil ranks uses TextRanks. The needle is copied.
func NewFinder(needle []byte, ranks *Ranks) *Finder {
	if ranks == nil {
		ranks = &TextRanks
	}
	f := &Finder{needle: append([]byte(nil), needle...)}
	f.rare, f.rareIdx = ranks.RareByte(f.needle)
	return f
}

// Needle returns the needle searched for. Callers must not modify it.
func (f *Finder) Needle() []byte {
	return f.needle
}

// Index returns the index of the first instance of the needle in haystack at
// or after at, or -1.
func (f *Finder) Index(haystack []byte, at int) int {
	nl := len(f.needle)
	if at < 0 {
		at = 0
	}
	if nl == 0 {
		if at <= len(haystack) {
			return at
		}
		return -1
	}
	if len(haystack)-at < nl {
		return -1
	}
	if nl == 1 {
		return MemchrAt(haystack, f.rare, at)
	}

	// The anchor byte sits rareIdx bytes into any occurrence.
	pos := at + f.rareIdx
	last := len(haystack) - nl + f.rareIdx
	for pos <= last {
		c := MemchrAt(haystack[:last+1], f.rare, pos)
		if c < 0 {
			return -1
		}
		start := c - f.rareIdx
		if bytes.Equal(haystack[start:start+nl], f.needle) {
			return start
		}
		pos = c + 1
	}
	return -1
}

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// Example:
//
//	pos := simd.Memmem([]byte("GGGGCGCTAATAATGG"), []byte("TAAT"))
//	// pos == 7
func Memmem(haystack, needle []byte) int {
	return NewFinder(needle, nil).Index(haystack, 0)
}
