package pattern

import "fmt"

// Syntax selects how a query is turned into pattern positions.
type Syntax uint8

const (
	// Bytes treats every query byte as one position matching that byte.
	Bytes Syntax = iota

	// DNA parses IUPAC nucleotide codes and bracketed base sets,
	// e.g. "AC[AT]NGG".
	DNA
)

// String returns a human-readable syntax name
func (s Syntax) String() string {
	switch s {
	case Bytes:
		return "bytes"
	case DNA:
		return "dna"
	default:
		return fmt.Sprintf("Syntax(%d)", s)
	}
}

// Options controls parsing of the query.
type Options struct {
	Syntax Syntax

	// FoldCase makes ASCII letters match either case. DNA syntax always
	// folds case.
	FoldCase bool
}

// class is the set of text bytes accepted at one pattern position.
type class [4]uint64

func (c *class) add(b byte) {
	c[b>>6] |= 1 << (b & 63)
}

func (c *class) has(b byte) bool {
	return c[b>>6]&(1<<(b&63)) != 0
}

func (c *class) count() int {
	n := 0
	for b := 0; b < 256; b++ {
		if c.has(byte(b)) {
			n++
		}
	}
	return n
}

func (c *class) first() byte {
	for b := 0; b < 256; b++ {
		if c.has(byte(b)) {
			return byte(b)
		}
	}
	return 0
}

// parse converts query into one class per position.
func parse(query []byte, opts Options) ([]class, error) {
	switch opts.Syntax {
	case Bytes:
		return parseBytes(query, opts.FoldCase), nil
	case DNA:
		return parseDNA(query)
	default:
		return nil, fmt.Errorf("%w: unknown syntax %v", ErrInvalidPattern, opts.Syntax)
	}
}

func parseBytes(query []byte, fold bool) []class {
	out := make([]class, len(query))
	for i, b := range query {
		out[i].add(b)
		if fold {
			switch {
			case 'a' <= b && b <= 'z':
				out[i].add(b - 'a' + 'A')
			case 'A' <= b && b <= 'Z':
				out[i].add(b - 'A' + 'a')
			}
		}
	}
	return out
}
