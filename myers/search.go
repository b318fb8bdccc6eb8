package myers

import (
	"fmt"

	"github.com/coregx/seeq/pattern"
)

// Direction selects which occurrence wins among equally good ones.
type Direction uint8

const (
	// Earliest reports the occurrence with the minimal distance whose end
	// comes first. Used to trim everything up to a 5' adapter.
	Earliest Direction = iota

	// Latest reports the occurrence with the minimal distance whose start
	// comes last. Used to trim everything from a 3' adapter on.
	Latest
)

// String returns a human-readable direction name
func (d Direction) String() string {
	switch d {
	case Earliest:
		return "Earliest"
	case Latest:
		return "Latest"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Match is one occurrence: text[Start:End] is within Distance edits of the
// query.
type Match struct {
	Start    int // inclusive
	End      int // exclusive
	Distance int
}

// Len returns the length of the matched region.
func (m Match) Len() int {
	return m.End - m.Start
}

// Bytes returns the matched region of text, which must be the text the
// match was found in.
func (m Match) Bytes(text []byte) []byte {
	return text[m.Start:m.End:m.End]
}

// Search finds the best occurrence of p in text.
//
// With Earliest the text is scanned left to right and the first end offset
// reaching the minimal distance wins; the start is then the closest one
// reproducing that distance, i.e. the shortest alignment. Latest is the
// mirror image: the reversed query is scanned over the text right to left,
// the largest start offset reaching the minimal distance wins and the end
// is the closest one reproducing it.
//
// It returns false when no substring is within p.MaxDistance() edits.
// Search is safe for concurrent use.
func Search(text []byte, p *pattern.Pattern, dir Direction) (Match, bool) {
	s := getState()
	defer putState(s)
	return s.Search(text, p, dir)
}

// SearchFirst reports the first occurrence in text, scanning left to right
// and stopping as soon as the distance rises again after reaching a value
// within the threshold. The match ends after the last symbol of the run at
// that minimum; the end of text closes a run like a rise does. The distance
// reported is the local minimum, which may be larger than the best distance
// further along the text.
func SearchFirst(text []byte, p *pattern.Pattern) (Match, bool) {
	s := getState()
	defer putState(s)
	return s.SearchFirst(text, p)
}

// Search is the State-reusing form of the package-level Search.
func (s *State) Search(text []byte, p *pattern.Pattern, dir Direction) (Match, bool) {
	switch dir {
	case Latest:
		pos, dist, ok := s.scanBest(text, p, true)
		if !ok {
			return Match{}, false
		}
		start := len(text) - pos
		end := start + s.extent(text[start:], p, false, dist)
		return Match{Start: start, End: end, Distance: dist}, true
	default:
		end, dist, ok := s.scanBest(text, p, false)
		if !ok {
			return Match{}, false
		}
		start := end - s.extent(text[:end], p, true, dist)
		return Match{Start: start, End: end, Distance: dist}, true
	}
}

// SearchFirst is the State-reusing form of the package-level SearchFirst.
func (s *State) SearchFirst(text []byte, p *pattern.Pattern) (Match, bool) {
	s.reset(p.Blocks())
	high := p.High()
	score := p.Len()
	streak := p.MaxDistance() + 1
	end := 0

	for j, c := range text {
		score += s.step(p.Eq(c), high, 0)
		if score < streak {
			streak, end = score, j+1
		} else if end > 0 {
			if score > streak {
				break
			}
			// A flat run at the minimum extends the match.
			end = j + 1
		}
	}
	if end == 0 {
		return Match{}, false
	}
	start := end - s.extent(text[:end], p, true, streak)
	return Match{Start: start, End: end, Distance: streak}, true
}

// scanBest runs the free-start recurrence over the whole text, forwards or
// (reverse) backwards with the reversed query. It returns how many symbols
// had been consumed when the bottom row first reached its minimum, and that
// minimum. ok is false when the minimum exceeds the threshold.
func (s *State) scanBest(text []byte, p *pattern.Pattern, reverse bool) (pos, dist int, ok bool) {
	s.reset(p.Blocks())
	high := p.High()
	n := len(text)
	score := p.Len()
	dist = p.MaxDistance() + 1

	for j := 0; j < n; j++ {
		var eq []uint64
		if reverse {
			eq = p.EqReverse(text[n-1-j])
		} else {
			eq = p.Eq(text[j])
		}
		score += s.step(eq, high, 0)
		if score < dist {
			dist, pos = score, j+1
			if dist == 0 {
				// Nothing beats an exact hit and ties never replace it.
				break
			}
		}
	}
	return pos, dist, pos > 0
}

// extent is the traceback. It re-runs the recurrence anchored at one end of
// window, reading window backwards with the reversed query (reverse) or
// forwards with the query, and returns the length of the shortest prefix of
// that reading whose distance to the query is at most dist. An alignment
// within the threshold spans at most len+k symbols, which bounds the work.
func (s *State) extent(window []byte, p *pattern.Pattern, reverse bool, dist int) int {
	s.reset(p.Blocks())
	high := p.High()
	n := len(window)
	limit := min(n, p.Len()+p.MaxDistance())
	score := p.Len()

	for i := 0; i < limit; i++ {
		var eq []uint64
		if reverse {
			eq = p.EqReverse(window[n-1-i])
		} else {
			eq = p.Eq(window[i])
		}
		score += s.step(eq, high, 1)
		if score <= dist {
			return i + 1
		}
	}
	return limit
}
