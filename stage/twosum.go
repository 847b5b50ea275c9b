package stage

import (
	"github.com/discopt/seymour-go/separation"
	"github.com/discopt/seymour-go/spmatrix"
)

// twoSumSizeCap bounds the matrices FindTwoSeparation is tried on, for
// the same reason threeSumSizeCap/connectivitySizeCap do.
const twoSumSizeCap = 60

// FindTwoSeparation searches m for a 2-separation glued by a single row
// or column, verified by exact off-diagonal rank (see
// tryTwoSeparationWitnessRow/Column), and returns it ready to drive
// decomp.Node.UpdateTwoSum. This is the scheduler-reachable counterpart
// to the series-parallel reduction's own 2-separation discovery (spec
// C9's "genuine 2-separation discovered during the reduction" case): it
// runs after a series-parallel pass that made no progress, so a node
// whose reduction stalls still gets a chance at a 2-sum split before
// falling through to the nested-minor machinery.
func FindTwoSeparation(m *spmatrix.Matrix) (*separation.Sepa, bool) {
	rows, cols := m.Rows(), m.Cols()
	if rows > twoSumSizeCap || cols > twoSumSizeCap {
		return nil, false
	}
	for r := 0; r < rows; r++ {
		if sepa, ok := tryTwoSeparationWitnessRow(m, r); ok {
			return sepa, true
		}
	}
	for c := 0; c < cols; c++ {
		if sepa, ok := tryTwoSeparationWitnessColumn(m, c); ok {
			return sepa, true
		}
	}
	return nil, false
}
