// Package prefilter rejects texts that cannot contain an approximate match
// before the bit-parallel matcher runs over them.
//
// The filter relies on the pigeonhole principle: split a query of length m
// into k+1 disjoint pieces. An alignment with at most k edits leaves at
// least one piece untouched, so any text within distance k of the query
// contains one of the pieces verbatim. A text containing none of them can
// be rejected without running the matcher.
//
// The package selects the search primitive from the number of pieces:
//   - k == 0 → MemmemPrefilter (the whole query, rare-byte memmem)
//   - k > 0  → AhoCorasickPrefilter (k+1 pieces, one automaton pass)
//
// A prefilter never accepts for the matcher: a hit only means the matcher
// must still scan the whole text.
//
// Example usage:
//
//	pf := prefilter.NewBuilder([]byte("CGCTAATTAATGGAAT"), 3).Build()
//	if pf != nil && !prefilter.MayMatch(pf, read) {
//	    // no match within 3 edits
//	}
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/seeq/simd"
)

// DefaultMinSeedLen is the shortest piece worth searching for. Shorter
// pieces occur by chance in almost every text.
const DefaultMinSeedLen = 4

// Prefilter finds verbatim seeds of the query in a text.
type Prefilter interface {
	// Find returns the index of the first seed occurrence starting at or
	// after start, or -1 if there is none.
	Find(haystack []byte, start int) int

	// Seeds returns the pieces searched for.
	Seeds() [][]byte

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter.
	HeapBytes() int
}

// MayMatch reports whether haystack contains any seed of pf. When it
// returns false no substring of haystack is within the query's distance.
func MayMatch(pf Prefilter, haystack []byte) bool {
	return pf.Find(haystack, 0) >= 0
}

// Builder constructs a prefilter for a literal query.
type Builder struct {
	literal     []byte
	maxDistance int
	minSeedLen  int
	ranks       *simd.Ranks
}

// NewBuilder creates a builder for literal searched with at most
// maxDistance edits.
func NewBuilder(literal []byte, maxDistance int) *Builder {
	return &Builder{
		literal:     literal,
		maxDistance: maxDistance,
		minSeedLen:  DefaultMinSeedLen,
	}
}

// MinSeedLen sets the shortest acceptable piece. Values below 1 are
// treated as 1.
func (b *Builder) MinSeedLen(n int) *Builder {
	b.minSeedLen = max(n, 1)
	return b
}

// Ranks sets the byte frequency table used to pick the rare byte of an
// exact-match seed. nil selects simd.TextRanks.
func (b *Builder) Ranks(r *simd.Ranks) *Builder {
	b.ranks = r
	return b
}

// Build returns the prefilter, or nil when none is useful: the literal is
// empty, the distance is out of range, or the pieces would be shorter than
// the minimum seed length.
func (b *Builder) Build() Prefilter {
	pieces := Pieces(b.literal, b.maxDistance)
	if pieces == nil || len(pieces[len(pieces)-1]) < b.minSeedLen {
		return nil
	}
	if len(pieces) == 1 {
		return newMemmemPrefilter(pieces[0], b.ranks)
	}
	return newAhoCorasickPrefilter(pieces)
}

// Pieces splits literal into maxDistance+1 contiguous pieces whose lengths
// differ by at most one, longer pieces first. It returns nil when the
// split is impossible. The pieces alias literal.
func Pieces(literal []byte, maxDistance int) [][]byte {
	n := maxDistance + 1
	if maxDistance < 0 || n > len(literal) {
		return nil
	}
	size, extra := len(literal)/n, len(literal)%n
	pieces := make([][]byte, 0, n)
	at := 0
	for i := 0; i < n; i++ {
		l := size
		if i < extra {
			l++
		}
		pieces = append(pieces, literal[at:at+l:at+l])
		at += l
	}
	return pieces
}

// MemmemPrefilter searches for the whole query. Used when no edit is
// allowed.
type MemmemPrefilter struct {
	finder *simd.Finder
}

func newMemmemPrefilter(needle []byte, ranks *simd.Ranks) *MemmemPrefilter {
	return &MemmemPrefilter{finder: simd.NewFinder(needle, ranks)}
}

// Find implements Prefilter.Find.
func (p *MemmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	return p.finder.Index(haystack, start)
}

// Seeds implements Prefilter.Seeds.
func (p *MemmemPrefilter) Seeds() [][]byte {
	return [][]byte{p.finder.Needle()}
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *MemmemPrefilter) HeapBytes() int {
	return len(p.finder.Needle())
}

// AhoCorasickPrefilter searches for all k+1 pieces in one pass.
type AhoCorasickPrefilter struct {
	auto   *ahocorasick.Automaton
	seeds  [][]byte
	nbytes int
}

func newAhoCorasickPrefilter(pieces [][]byte) Prefilter {
	builder := ahocorasick.NewBuilder()
	seeds := make([][]byte, len(pieces))
	nbytes := 0
	for i, piece := range pieces {
		seeds[i] = append([]byte(nil), piece...)
		builder.AddPattern(seeds[i])
		nbytes += len(piece)
	}
	auto, err := builder.Build()
	if err != nil {
		// Without an automaton there is nothing to reject with.
		return nil
	}
	return &AhoCorasickPrefilter{auto: auto, seeds: seeds, nbytes: nbytes}
}

// Find implements Prefilter.Find.
func (p *AhoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// Seeds implements Prefilter.Seeds.
func (p *AhoCorasickPrefilter) Seeds() [][]byte {
	return p.seeds
}

// HeapBytes implements Prefilter.HeapBytes. It counts the stored seeds
// only; the automaton does not report its size.
func (p *AhoCorasickPrefilter) HeapBytes() int {
	return p.nbytes
}
