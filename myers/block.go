// Package myers implements bounded edit-distance search with Myers'
// bit-parallel recurrence.
//
// The alignment matrix has one row per query position and one column per
// text symbol. Instead of storing the column, the matcher keeps two bit
// vectors per 64-row block: Pv marks rows whose value is one more than the
// row above, Mv rows whose value is one less. One text symbol advances every
// block with a constant number of word operations, carrying the horizontal
// delta of the block's last row into the next block. The value of the bottom
// row, the best distance of the query against a text suffix, is tracked
// incrementally.
//
// Reference: G. Myers, "A fast bit-vector algorithm for approximate string
// matching based on dynamic programming", J. ACM 46(3), 1999; block form
// after H. Hyyrö, "A bit-vector algorithm for computing Levenshtein and
// Damerau edit distances", 2003.
package myers

// advanceBlock moves one block of the column past a text symbol.
//
// eq is the block's match mask for the symbol, high the bit of the block's
// last row, hin the horizontal delta (-1, 0 or +1) entering the block's first
// row. It returns the delta leaving the block's last row.
func advanceBlock(pv, mv *uint64, eq, high uint64, hin int) int {
	p, m := *pv, *mv

	xv := eq | m
	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & p) + p) ^ p) | eq

	ph := m | ^(xh | p)
	mh := p & xh

	hout := 0
	if ph&high != 0 {
		hout = 1
	} else if mh&high != 0 {
		hout = -1
	}

	ph <<= 1
	mh <<= 1
	if hin < 0 {
		mh |= 1
	} else if hin > 0 {
		ph |= 1
	}

	*pv = mh | ^(xv | ph)
	*mv = ph & xv
	return hout
}
