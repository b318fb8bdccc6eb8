package myers

import "sync"

// State holds the per-search bit vectors.
//
// A State is not safe for concurrent use; each goroutine needs its own.
// The package-level functions take one from an internal pool, so most
// callers never see a State. Callers running many searches on one goroutine
// may keep their own to skip the pool.
type State struct {
	pv []uint64
	mv []uint64
}

// NewState returns an empty State. It grows to fit any pattern.
func NewState() *State {
	return &State{}
}

// reset prepares the vectors for a fresh column: every row is one more than
// the row above it (D[i][0] = i).
func (s *State) reset(blocks int) {
	if cap(s.pv) < blocks {
		s.pv = make([]uint64, blocks)
		s.mv = make([]uint64, blocks)
	}
	s.pv = s.pv[:blocks]
	s.mv = s.mv[:blocks]
	for b := range s.pv {
		s.pv[b] = ^uint64(0)
		s.mv[b] = 0
	}
}

// step advances all blocks past one text symbol and returns the change of
// the bottom-row value. hin is the delta entering the top row: 0 lets an
// alignment start at any text position, +1 anchors it at the first symbol
// consumed.
func (s *State) step(eq, high []uint64, hin int) int {
	h := hin
	for b := range eq {
		h = advanceBlock(&s.pv[b], &s.mv[b], eq[b], high[b], h)
	}
	return h
}

var statePool = sync.Pool{
	New: func() any {
		return NewState()
	},
}

func getState() *State {
	return statePool.Get().(*State)
}

func putState(s *State) {
	statePool.Put(s)
}
