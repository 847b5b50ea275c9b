package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/separation"
)

// threeSumSizeCap bounds the matrices EnumerateThreeSeparation is tried
// on: the search below is quadratic in rows*cols (one witness row, one
// witness column, tried pairwise), fine at the sizes the decomposition
// tree narrows down to by the time C12 runs but not worth attempting on
// a large input directly.
const threeSumSizeCap = 40

// EnumerateThreeSeparation searches for a distributed (1+1) 3-separation
// of n's nested-minor-sequence matrix (n.Sequence.Matrix, which BuildSequence
// and WalkGraphicness must already have populated): a witness row r0 and
// witness column c0 whose removal splits the remaining rows/columns into
// two groups, each with at least 4 elements once r0/c0 are added back in,
// verified by the off-diagonal blocks' exact rank (1+1, not mere
// disconnection in the bipartite incidence graph).
//
// n.Sequence.FirstNonCoGraphic names the step at which the incremental
// graphicness walk (C11) first failed both the graphic and the cographic
// prefix test; the element introduced at that step is exactly where a
// genuine 3-separation is most likely to be witnessed; when present, it
// seeds the r0/c0 search instead of trying every pair blindly.
//
// Concentrated (2+0) separations are not searched for — per the
// documented resolution of spec's open question on CONCENTRATED_RANK,
// the engine only ever pursues the distributed case and otherwise treats
// the node as not 3-separable, falling through to the scheduler's next
// stage.
//
// This is a scoped-down stand-in for CMR's regular_enumerate.c, which
// additionally searches concentrated splits and multiple witnesses per
// side; the distributed case alone already exercises the same
// separation/decomp machinery a full search would.
func EnumerateThreeSeparation(n *decomp.Node) (*separation.Sepa, bool) {
	if n.Sequence == nil {
		return nil, false
	}
	m := n.Sequence.Matrix
	rows, cols := m.Rows(), m.Cols()
	if rows > threeSumSizeCap || cols > threeSumSizeCap {
		return nil, false
	}
	if rows+cols < 8 {
		// Each side needs >= 4 elements including its witness; a matrix
		// this small can never satisfy both sides.
		return nil, false
	}

	if fail := n.Sequence.FirstNonCoGraphic; fail >= 0 && fail < len(n.Sequence.SequenceNumRows) {
		r0 := n.Sequence.SequenceNumRows[fail] - 1
		c0 := n.Sequence.SequenceNumCols[fail] - 1
		if r0 >= 0 && r0 < rows {
			for c := 0; c < cols; c++ {
				if sepa, ok := tryThreeSeparationWitnessPair(m, r0, c); ok {
					return sepa, true
				}
			}
		}
		if c0 >= 0 && c0 < cols {
			for r := 0; r < rows; r++ {
				if sepa, ok := tryThreeSeparationWitnessPair(m, r, c0); ok {
					return sepa, true
				}
			}
		}
	}

	for r0 := 0; r0 < rows; r0++ {
		for c0 := 0; c0 < cols; c0++ {
			if sepa, ok := tryThreeSeparationWitnessPair(m, r0, c0); ok {
				return sepa, true
			}
		}
	}
	return nil, false
}
