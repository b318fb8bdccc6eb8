package pattern

// Base bits. N as a text symbol is its own base: it is only matched by
// query positions that accept anything.
const (
	baseA uint8 = 1 << iota
	baseC
	baseG
	baseT // also U
	baseN

	baseAny = baseA | baseC | baseG | baseT | baseN
)

// iupacCode maps a query byte to the set of bases it accepts; 0 is illegal.
var iupacCode [256]uint8

// baseText lists the text bytes carrying each base bit.
var baseText = [5][]byte{
	{'A', 'a'},
	{'C', 'c'},
	{'G', 'g'},
	{'T', 't', 'U', 'u'},
	{'N', 'n'},
}

func init() {
	set := func(c byte, bits uint8) {
		iupacCode[c] = bits
		iupacCode[c+'a'-'A'] = bits
	}
	set('A', baseA)
	set('C', baseC)
	set('G', baseG)
	set('T', baseT)
	set('U', baseT)
	set('R', baseA|baseG)
	set('Y', baseC|baseT)
	set('S', baseC|baseG)
	set('W', baseA|baseT)
	set('K', baseG|baseT)
	set('M', baseA|baseC)
	set('B', baseC|baseG|baseT)
	set('D', baseA|baseG|baseT)
	set('H', baseA|baseC|baseT)
	set('V', baseA|baseC|baseG)
	set('N', baseAny)
}

func baseClass(bits uint8) class {
	var c class
	for i, text := range baseText {
		if bits&(1<<i) == 0 {
			continue
		}
		for _, b := range text {
			c.add(b)
		}
	}
	return c
}

// IsBase reports whether b is a text byte the DNA syntax knows about
// (A, C, G, T, U or N in either case).
func IsBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'U', 'N', 'a', 'c', 'g', 't', 'u', 'n':
		return true
	}
	return false
}

// parseDNA parses an IUPAC expression. A bracketed set such as [AT] is a
// single position accepting the union of its members.
func parseDNA(query []byte) ([]class, error) {
	out := make([]class, 0, len(query))
	open := false
	var set uint8

	for i, c := range query {
		switch c {
		case '[':
			if open {
				return nil, &SyntaxError{Pos: i, Char: c, Reason: "nested '['"}
			}
			open, set = true, 0
		case ']':
			if !open {
				return nil, &SyntaxError{Pos: i, Char: c, Reason: "unmatched ']'"}
			}
			if set == 0 {
				return nil, &SyntaxError{Pos: i, Char: c, Reason: "empty base set"}
			}
			out = append(out, baseClass(set))
			open = false
		default:
			code := iupacCode[c]
			if code == 0 {
				return nil, &SyntaxError{Pos: i, Char: c, Reason: "illegal character"}
			}
			if open {
				set |= code
			} else {
				out = append(out, baseClass(code))
			}
		}
	}
	if open {
		return nil, &SyntaxError{Pos: len(query), Reason: "missing ']'"}
	}
	return out, nil
}
