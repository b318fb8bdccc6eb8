// Package region slices a text around a match.
//
// Every function takes the result of a search as the (Match, bool) pair the
// matcher returns. When ok is false there is no region: the functions
// return nil, false without looking at the text. Slices alias text; nothing
// is copied.
//
// For any match the three pieces partition the text:
//
//	PrefixTrim(text) + text[m.Start:m.End] + SuffixTrim(text) == text
package region

import "github.com/coregx/seeq/myers"

// Side tells which end of the text a match anchors.
type Side uint8

const (
	// Prefix keeps or drops everything up to the match.
	Prefix Side = iota
	// Suffix keeps or drops everything from the match on.
	Suffix
)

// String returns "prefix" or "suffix".
func (s Side) String() string {
	if s == Suffix {
		return "suffix"
	}
	return "prefix"
}

// Direction returns the search direction whose tie-breaking suits the side:
// the earliest match for a prefix, the latest for a suffix.
func (s Side) Direction() myers.Direction {
	if s == Suffix {
		return myers.Latest
	}
	return myers.Earliest
}

// PrefixKeep returns text[:m.End].
func PrefixKeep(text []byte, m myers.Match, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	return text[:m.End], true
}

// PrefixTrim returns text[:m.Start].
func PrefixTrim(text []byte, m myers.Match, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	return text[:m.Start], true
}

// SuffixKeep returns text[m.Start:].
func SuffixKeep(text []byte, m myers.Match, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	return text[m.Start:], true
}

// SuffixTrim returns text[m.End:].
func SuffixTrim(text []byte, m myers.Match, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}
	return text[m.End:], true
}

// Extract dispatches to one of the four slicing functions.
func Extract(text []byte, m myers.Match, ok bool, side Side, keep bool) ([]byte, bool) {
	switch {
	case side == Prefix && keep:
		return PrefixKeep(text, m, ok)
	case side == Prefix:
		return PrefixTrim(text, m, ok)
	case keep:
		return SuffixKeep(text, m, ok)
	default:
		return SuffixTrim(text, m, ok)
	}
}
