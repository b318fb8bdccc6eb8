// Package seeq finds approximate occurrences of a short query in a text.
//
// A query matches any substring of the text that can be turned into it
// with at most k single-byte insertions, deletions or substitutions. The
// search is Myers' bit-parallel algorithm, O(n·⌈m/64⌉) for a text of n
// bytes and a query of m positions, followed by a short traceback that
// recovers where the match starts.
//
// The typical use is trimming sequencing reads: cut everything up to a
// 5' primer, or everything from a 3' adapter on.
//
// Basic usage:
//
//	// Compile an adapter, tolerating 3 edits
//	m, err := seeq.Compile("CGCTAATTAATGGAAT", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Drop the adapter and everything after it
//	insert, ok := m.MatchSuffix(read, false)
//
//	// Keep everything up to and including a primer
//	head, ok := m.MatchPrefix(read, true)
//
// IUPAC nucleotide syntax:
//
//	config := seeq.DefaultConfig()
//	config.Syntax = seeq.DNA
//	m, err := seeq.CompileWithConfig("GGN[AT]CC", 1, config)
//
// Tie-breaking: among occurrences with the same minimal distance, prefix
// operations and Find report the one ending first, suffix operations and
// FindLast the one starting last. The other boundary is always chosen to
// give the shortest matched region.
package seeq

import (
	"strconv"
	"sync/atomic"

	"github.com/coregx/seeq/myers"
	"github.com/coregx/seeq/pattern"
	"github.com/coregx/seeq/prefilter"
	"github.com/coregx/seeq/region"
	"github.com/coregx/seeq/simd"
)

// Syntax selects how a query is parsed.
type Syntax = pattern.Syntax

const (
	// Bytes treats every query byte as one position.
	Bytes = pattern.Bytes
	// DNA parses IUPAC nucleotide codes and bracketed base sets.
	DNA = pattern.DNA
)

// Match is one occurrence: text[Start:End] is within Distance edits of the
// query.
type Match = myers.Match

// Compile errors. Test with errors.Is.
var (
	ErrInvalidPattern  = pattern.ErrInvalidPattern
	ErrInvalidDistance = pattern.ErrInvalidDistance
)

type (
	// CompileError reports the query that failed to compile.
	CompileError = pattern.CompileError
	// SyntaxError reports the position of a malformed DNA query.
	SyntaxError = pattern.SyntaxError
)

// Matcher is a compiled query.
//
// A Matcher is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	m := seeq.MustCompile("GATTACA", 1)
//	if m.Match([]byte("TTGATCACATT")) {
//	    println("matched!")
//	}
type Matcher struct {
	pat     *pattern.Pattern
	config  Config
	tracker *prefilter.Tracker
	stats   Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts texts handed to the matcher
	Searches uint64

	// Matches counts searches that found an occurrence
	Matches uint64

	// PrefilterRejects counts texts rejected without running the matcher
	PrefilterRejects uint64

	// PrefilterPasses counts texts the prefilter let through
	PrefilterPasses uint64

	// PrefilterActive is false when there is no prefilter, or when it was
	// retired for rejecting too few texts
	PrefilterActive bool
}

// Compile compiles query with the default configuration, tolerating at
// most maxDistance edits.
//
// It fails with ErrInvalidPattern for an empty query and with
// ErrInvalidDistance unless 0 ≤ maxDistance < len(query).
//
// Example:
//
//	m, err := seeq.Compile("GATTACA", 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(query string, maxDistance int) (*Matcher, error) {
	return CompileWithConfig(query, maxDistance, DefaultConfig())
}

// MustCompile is like Compile but panics if the query cannot be compiled.
//
// Example:
//
//	var adapter = seeq.MustCompile("AGATCGGAAGAGC", 2)
func MustCompile(query string, maxDistance int) *Matcher {
	m, err := Compile(query, maxDistance)
	if err != nil {
		panic("seeq: Compile(`" + query + "`, " + strconv.Itoa(maxDistance) + "): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles query with a custom configuration.
//
// Example:
//
//	config := seeq.DefaultConfig()
//	config.FoldCase = true
//	m, err := seeq.CompileWithConfig("gattaca", 1, config)
func CompileWithConfig(query string, maxDistance int, config Config) (*Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	pat, err := pattern.Compile([]byte(query), maxDistance, pattern.Options{
		Syntax:   config.Syntax,
		FoldCase: config.FoldCase,
	})
	if err != nil {
		return nil, err
	}

	m := &Matcher{pat: pat, config: config}
	if config.EnablePrefilter && pat.Literal() != nil {
		b := prefilter.NewBuilder(pat.Literal(), maxDistance).MinSeedLen(config.MinSeedLen)
		if isReadAlphabet(pat.Literal()) {
			b.Ranks(&simd.ReadRanks)
		}
		m.tracker = prefilter.NewTracker(b.Build())
	}
	return m, nil
}

// isReadAlphabet reports whether lit consists of nucleotide letters only,
// in which case read byte frequencies beat generic text frequencies.
func isReadAlphabet(lit []byte) bool {
	for _, c := range lit {
		if !pattern.IsBase(c) {
			return false
		}
	}
	return true
}

// MatchPrefix finds the occurrence ending first (among those with the
// minimal distance) and returns the text up to its end when keepMatch is
// true, or up to its start otherwise. ok is false when there is no
// occurrence within the distance.
//
// The returned slice aliases text.
//
// Example:
//
//	m := seeq.MustCompile("CGCTAATTAATGGAAT", 3)
//	head, _ := m.MatchPrefix([]byte("GGGGCGCTAATAATGGAATGGGG"), false)
//	// head == "GGGG"
func (m *Matcher) MatchPrefix(text []byte, keepMatch bool) ([]byte, bool) {
	return m.extract(text, region.Prefix, keepMatch)
}

// MatchPrefixString is like MatchPrefix but for strings.
func (m *Matcher) MatchPrefixString(text string, keepMatch bool) (string, bool) {
	b, ok := m.MatchPrefix([]byte(text), keepMatch)
	return string(b), ok
}

// MatchSuffix finds the occurrence starting last (among those with the
// minimal distance) and returns the text from its start when keepMatch is
// true, or from its end otherwise. ok is false when there is no
// occurrence within the distance.
//
// The returned slice aliases text.
//
// Example:
//
//	m := seeq.MustCompile("CGCTAATTAATGGAAT", 3)
//	tail, _ := m.MatchSuffix([]byte("GGGGCGCTAATAATGGAATGGGG"), true)
//	// tail == "CGCTAATAATGGAATGGGG"
func (m *Matcher) MatchSuffix(text []byte, keepMatch bool) ([]byte, bool) {
	return m.extract(text, region.Suffix, keepMatch)
}

// MatchSuffixString is like MatchSuffix but for strings.
func (m *Matcher) MatchSuffixString(text string, keepMatch bool) (string, bool) {
	b, ok := m.MatchSuffix([]byte(text), keepMatch)
	return string(b), ok
}

// Find returns the best occurrence in text, preferring the one that ends
// first when several have the minimal distance.
func (m *Matcher) Find(text []byte) (Match, bool) {
	return m.search(text, myers.Earliest)
}

// FindLast returns the best occurrence in text, preferring the one that
// starts last when several have the minimal distance.
func (m *Matcher) FindLast(text []byte) (Match, bool) {
	return m.search(text, myers.Latest)
}

// FindFirst returns the first occurrence in text: scanning left to right,
// it settles on the first local minimum of the distance that is within
// the threshold, and the match ends where that minimum stops holding. It
// is faster than Find on long texts but may miss a
// better occurrence further along.
func (m *Matcher) FindFirst(text []byte) (Match, bool) {
	if !m.mayMatch(text) {
		return Match{}, false
	}
	return m.count(myers.SearchFirst(text, m.pat))
}

// FindAll returns successive non-overlapping occurrences, each found by
// FindFirst in the text left after the previous one.
// If n >= 0, returns at most n matches. If n < 0, returns all matches.
//
// Example:
//
//	m := seeq.MustCompile("ACGT", 0)
//	all := m.FindAll([]byte("ACGTxACGT"), -1)
//	// len(all) == 2
func (m *Matcher) FindAll(text []byte, n int) []Match {
	if n == 0 || !m.mayMatch(text) {
		return nil
	}

	var matches []Match
	s := myers.NewState()
	for offset := 0; n < 0 || len(matches) < n; {
		match, ok := m.count(s.SearchFirst(text[offset:], m.pat))
		if !ok {
			break
		}
		match.Start += offset
		match.End += offset
		matches = append(matches, match)
		offset = match.End
	}
	return matches
}

// Split slices text into the fragments between the occurrences found by
// FindAll, dropping the occurrences themselves.
// If n > 0, returns at most n fragments, the last one being the unsplit
// remainder. If n == 0, returns nil. If n < 0, returns all fragments.
//
// Example:
//
//	m := seeq.MustCompile("NNNN", 0)
//	parts := m.Split([]byte("ACNNNNGTNNNNAA"), -1)
//	// parts = ["AC", "GT", "AA"]
func (m *Matcher) Split(text []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}

	limit := -1
	if n > 0 {
		limit = n - 1
	}
	matches := m.FindAll(text, limit)

	result := make([][]byte, 0, len(matches)+1)
	lastEnd := 0
	for _, match := range matches {
		result = append(result, text[lastEnd:match.Start])
		lastEnd = match.End
	}
	return append(result, text[lastEnd:])
}

// Match reports whether text contains an occurrence within the distance.
func (m *Matcher) Match(text []byte) bool {
	_, ok := m.FindFirst(text)
	return ok
}

// MatchString reports whether text contains an occurrence within the
// distance.
func (m *Matcher) MatchString(text string) bool {
	return m.Match([]byte(text))
}

// Count returns the number of occurrences FindAll(text, n) would return.
func (m *Matcher) Count(text []byte, n int) int {
	return len(m.FindAll(text, n))
}

// MaxDistance returns the number of edits tolerated.
func (m *Matcher) MaxDistance() int {
	return m.pat.MaxDistance()
}

// Len returns the number of query positions. For DNA syntax a bracketed
// set counts as one position.
func (m *Matcher) Len() int {
	return m.pat.Len()
}

// String returns the source query.
func (m *Matcher) String() string {
	return m.pat.String()
}

// Config returns the configuration the matcher was compiled with.
func (m *Matcher) Config() Config {
	return m.config
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := m.Stats()
//	println("rejected:", stats.PrefilterRejects)
func (m *Matcher) Stats() Stats {
	st := Stats{
		Searches: atomic.LoadUint64(&m.stats.Searches),
		Matches:  atomic.LoadUint64(&m.stats.Matches),
	}
	if m.tracker != nil {
		st.PrefilterRejects, st.PrefilterPasses, _, st.PrefilterActive = m.tracker.Stats()
	}
	return st
}

// ResetStats resets execution statistics to zero and re-enables a retired
// prefilter.
func (m *Matcher) ResetStats() {
	atomic.StoreUint64(&m.stats.Searches, 0)
	atomic.StoreUint64(&m.stats.Matches, 0)
	if m.tracker != nil {
		m.tracker.Reset()
	}
}

// extract searches in the direction suited to side and slices text around
// the occurrence.
func (m *Matcher) extract(text []byte, side region.Side, keep bool) ([]byte, bool) {
	match, ok := m.search(text, side.Direction())
	return region.Extract(text, match, ok, side, keep)
}

func (m *Matcher) search(text []byte, dir myers.Direction) (Match, bool) {
	if !m.mayMatch(text) {
		return Match{}, false
	}
	return m.count(myers.Search(text, m.pat, dir))
}

// mayMatch runs the prefilter, if any, and counts the search.
func (m *Matcher) mayMatch(text []byte) bool {
	atomic.AddUint64(&m.stats.Searches, 1)
	return m.tracker == nil || m.tracker.MayMatch(text)
}

func (m *Matcher) count(match Match, ok bool) (Match, bool) {
	if ok {
		atomic.AddUint64(&m.stats.Matches, 1)
	}
	return match, ok
}
