// Package pattern compiles a query into the search-ready form consumed by
// the bit-parallel matcher.
//
// A compiled Pattern stores, for every distinct text byte accepted by the
// query, one bitmask per 64-position block: bit i of the mask is set when
// query position i accepts that byte. The masks are built twice, once for
// the query and once for the reversed query, because the matcher scans in
// both orientations. Bytes that never occur in the query share slot 0, the
// all-zero mask.
//
// A Pattern is immutable after Compile and safe for concurrent use.
package pattern

import "fmt"

// WordBits is the number of query positions packed into one block.
const WordBits = 64

// Pattern is a compiled query.
type Pattern struct {
	query  string
	m      int
	k      int
	blocks int

	// slot maps a text byte to its mask row; 0 is the shared zero row.
	slot  [256]uint16
	nslot int

	fwd  []uint64 // nslot*blocks masks for the query
	rev  []uint64 // nslot*blocks masks for the reversed query
	high []uint64 // per block, the bit holding the last query position

	// literal is the query as plain bytes when every position accepts
	// exactly one byte, nil otherwise.
	literal []byte
}

// Compile parses query and builds its masks.
//
// It fails with ErrInvalidPattern when the query has no positions (or,
// for DNA syntax, with a *SyntaxError), and with ErrInvalidDistance when
// maxDistance is negative or not smaller than the number of positions.
// The query is copied; the caller may reuse its buffer.
func Compile(query []byte, maxDistance int, opts Options) (*Pattern, error) {
	classes, err := parse(query, opts)
	if err != nil {
		return nil, &CompileError{Query: string(query), Err: err}
	}
	m := len(classes)
	if m == 0 {
		return nil, &CompileError{Query: string(query), Err: ErrInvalidPattern}
	}
	if maxDistance < 0 || maxDistance >= m {
		return nil, &CompileError{
			Query: string(query),
			Err:   fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidDistance, maxDistance, m),
		}
	}

	p := &Pattern{
		query:  string(query),
		m:      m,
		k:      maxDistance,
		blocks: (m + WordBits - 1) / WordBits,
		nslot:  1,
	}

	// Assign slots in order of first appearance.
	literal := make([]byte, 0, m)
	for i := range classes {
		c := &classes[i]
		if literal != nil {
			if c.count() == 1 {
				literal = append(literal, c.first())
			} else {
				literal = nil
			}
		}
		for b := 0; b < 256; b++ {
			if c.has(byte(b)) && p.slot[b] == 0 {
				p.slot[b] = uint16(p.nslot)
				p.nslot++
			}
		}
	}
	p.literal = literal

	p.fwd = make([]uint64, p.nslot*p.blocks)
	p.rev = make([]uint64, p.nslot*p.blocks)
	for i := range classes {
		c := &classes[i]
		r := m - 1 - i
		for b := 0; b < 256; b++ {
			if !c.has(byte(b)) {
				continue
			}
			row := int(p.slot[b]) * p.blocks
			p.fwd[row+i/WordBits] |= 1 << (i % WordBits)
			p.rev[row+r/WordBits] |= 1 << (r % WordBits)
		}
	}

	p.high = make([]uint64, p.blocks)
	for b := range p.high {
		p.high[b] = 1 << (WordBits - 1)
	}
	p.high[p.blocks-1] = 1 << ((m - 1) % WordBits)

	return p, nil
}

// Len returns the number of query positions.
func (p *Pattern) Len() int {
	return p.m
}

// MaxDistance returns the edit distance threshold.
func (p *Pattern) MaxDistance() int {
	return p.k
}

// Blocks returns the number of 64-bit words per mask.
func (p *Pattern) Blocks() int {
	return p.blocks
}

// Symbols returns the number of distinct text bytes accepted by the query.
func (p *Pattern) Symbols() int {
	return p.nslot - 1
}

// Eq returns the block masks of text byte c for the query read forwards.
// The slice aliases the pattern and must not be modified.
func (p *Pattern) Eq(c byte) []uint64 {
	row := int(p.slot[c]) * p.blocks
	return p.fwd[row : row+p.blocks : row+p.blocks]
}

// EqReverse is Eq for the reversed query.
func (p *Pattern) EqReverse(c byte) []uint64 {
	row := int(p.slot[c]) * p.blocks
	return p.rev[row : row+p.blocks : row+p.blocks]
}

// High returns, per block, the mask of the bit that carries the last query
// position (the bottom row of the alignment matrix). Must not be modified.
func (p *Pattern) High() []uint64 {
	return p.high
}

// Literal returns the query bytes if every position accepts exactly one
// byte, or nil. Must not be modified.
func (p *Pattern) Literal() []byte {
	return p.literal
}

// String returns the source query.
func (p *Pattern) String() string {
	return p.query
}
