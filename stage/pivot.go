package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/listmatrix"
)

// insertPivot performs a single regular pivot of n.Matrix at (r, c) and,
// on success, records it via decomp.Node.UpdatePivots so the resulting
// child carries the post-pivot matrix and the row/column relabeling spec
// §4.4 requires. Reports false without mutating n if the pivot's
// intermediate arithmetic would leave {-1, 0, +1} (listmatrix.Pivot's
// Regular-mode determinant certificate), since a pivot is only ever used
// here to restore connectivity, never to chase an irregularity witness.
func insertPivot(n *decomp.Node, r, c int) bool {
	lm, err := listmatrix.FromMatrix(n.Matrix)
	if err != nil {
		return false
	}
	cert, err := lm.Pivot(r, c, listmatrix.Regular, nil)
	if err != nil || cert != nil {
		return false
	}
	postPivot, err := lm.ToMatrix(n.Matrix.Domain())
	if err != nil {
		return false
	}
	n.UpdatePivots([]element.Pivot{{Row: r, Column: c}}, postPivot)
	return true
}

// PivotThreeSeparation implements the DistributedPivot decompose-strategy
// bit (spec §6): instead of splitting a distributed 3-separation into a
// 3-sum/delta-sum, it pivots at the separation's witness cell (r0, c0)
// and continues decomposing the single resulting child. Returns false if
// the pivot itself fails (overflow), leaving n untouched so the caller
// can fall back to UpdateThreeSum/UpdateDeltaSum instead.
func PivotThreeSeparation(n *decomp.Node, r0, c0 int) bool {
	return insertPivot(n, r0, c0)
}
