package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/graphoracle"
	"github.com/discopt/seymour-go/spmatrix"
)

// BuildSequence constructs the nested-minor sequence of spec C10: a
// prefix ordering of n's rows and columns such that each prefix differs
// from the last by exactly one element, recorded as SequenceNumRows/
// SequenceNumCols running counts. Elements are interleaved row, column,
// row, column, ... (falling back to whichever kind still has elements
// left once the other is exhausted), which keeps every prefix close to
// square — the simplest interleaving that satisfies spec C10's "one
// element at a time" contract without needing a 3-connectivity-driven
// ordering search.
//
// Before building the sequence, n.Matrix is checked for 3-connectivity.
// A matrix with a 2-separation gives the nested-minor walk no chance of
// reaching a useful graphic/cographic prefix beyond the separation point,
// so instead of building a sequence over it directly, BuildSequence
// pivots at the 2-separation's witness (decomp.Node.UpdatePivots records
// the resulting child) and returns false to tell the caller a pivot child
// was produced instead of a sequence. It returns true once it has built a
// sequence over n.Matrix itself.
func BuildSequence(n *decomp.Node) bool {
	if connected, r0, c0 := is3Connected(n.Matrix); !connected {
		if insertPivot(n, r0, c0) {
			return false
		}
		// Pivot overflowed; fall through and build the sequence over the
		// original matrix anyway rather than stalling this node forever.
	}

	rows, cols := n.Matrix.Rows(), n.Matrix.Cols()
	seq := &decomp.SequenceBookkeeping{
		Matrix:            n.Matrix,
		LastGraphic:       -1,
		LastCographic:     -1,
		FirstNonCoGraphic: -1,
	}

	ri, ci := 0, 0
	for ri < rows || ci < cols {
		takeRow := ri < rows && (ci >= cols || ri <= ci)
		if takeRow {
			seq.RowsOriginal = append(seq.RowsOriginal, element.MakeRow(ri+1))
			ri++
		} else {
			seq.ColumnsOriginal = append(seq.ColumnsOriginal, element.MakeColumn(ci+1))
			ci++
		}
		seq.SequenceNumRows = append(seq.SequenceNumRows, ri)
		seq.SequenceNumCols = append(seq.SequenceNumCols, ci)
	}
	n.Sequence = seq
	return true
}

// WalkGraphicness applies spec C11 along n's already-built sequence: it
// extends a NetworkBuilder one element at a time and records the longest
// graphic and cographic prefixes in n.Sequence.LastGraphic/LastCographic.
// Cographicness reuses the same walk on n.Transpose(), with the row/col
// running counts swapped since a transpose's rows are the original
// matrix's columns, per spec §4.13.
func WalkGraphicness(n *decomp.Node) {
	seq := n.Sequence
	if seq == nil {
		return
	}
	seq.LastGraphic = walkNetwork(n.Matrix, seq.SequenceNumRows, seq.SequenceNumCols)
	seq.LastCographic = walkNetwork(n.Transpose(), seq.SequenceNumCols, seq.SequenceNumRows)
	if seq.LastGraphic < len(seq.SequenceNumRows)-1 && seq.LastCographic < len(seq.SequenceNumRows)-1 {
		seq.FirstNonCoGraphic = max(seq.LastGraphic, seq.LastCographic) + 1
	}
}

// walkNetwork drives a fresh NetworkBuilder over m's rows/columns in the
// order implied by rowCounts/colCounts (the running "rows of m added so
// far" / "columns of m added so far" at each sequence step), returning
// the index of the last step that stayed graphic.
func walkNetwork(m *spmatrix.Matrix, rowCounts, colCounts []int) int {
	b := graphoracle.NewNetworkBuilder()
	last := -1
	colBound := map[int]bool{}
	prevR, prevC := 0, 0
	for i := range rowCounts {
		r, c := rowCounts[i], colCounts[i]
		switch {
		case r == prevR+1 && c == prevC:
			row := r - 1
			entries, err := m.RowSlice(row)
			if err != nil || len(entries) == 0 {
				return last
			}
			for _, e := range entries {
				if !colBound[int(e.Index)] {
					return last
				}
			}
			if _, extended := graphoracle.ExtendGraphic(b, element.MakeRow(row+1), entries[0], entries[1:]); !extended {
				return last
			}
			last = i
		case c == prevC+1 && r == prevR:
			col := c - 1
			graphoracle.ExtendGraphicByColumn(b, col, element.MakeColumn(col+1))
			colBound[col] = true
			last = i
		}
		prevR, prevC = r, c
	}
	return last
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
