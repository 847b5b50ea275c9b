package stage

import "github.com/discopt/seymour-go/spmatrix"

// connectivitySizeCap bounds the matrices is3Connected is tried on, for
// the same reason threeSumSizeCap does: the pairwise witness search below
// is quadratic in rows*cols, each trial paying for an exact-rank
// computation.
const connectivitySizeCap = 40

// is3Connected reports whether m has no 2-separation (row- or
// column-glued, verified by exact off-diagonal rank, not mere bipartite
// disconnection). When one is found, it also returns the first nonzero
// cell of the witnessing row/column — a pivot there is the move BuildSequence uses to try to restore
// connectivity. A matrix too large to search is conservatively reported
// as 3-connected (the caller proceeds with the plain sequence build
// rather than stalling on an expensive search).
func is3Connected(m *spmatrix.Matrix) (bool, int, int) {
	rows, cols := m.Rows(), m.Cols()
	if rows > connectivitySizeCap || cols > connectivitySizeCap {
		return true, -1, -1
	}
	found, isRow, idx := hasTwoSeparationWitness(m)
	if !found {
		return true, -1, -1
	}
	if isRow {
		rs, err := m.RowSlice(idx)
		if err == nil && len(rs) > 0 {
			return false, idx, int(rs[0].Index)
		}
	} else {
		cs, err := m.ColSlice(idx)
		if err == nil && len(cs) > 0 {
			return false, int(cs[0].Index), idx
		}
	}
	return true, -1, -1
}
