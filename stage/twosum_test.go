package stage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/spmatrix"
	"github.com/discopt/seymour-go/stage"
)

// Two K4 incidence matrices glued along one shared column: the same
// construction scheduler_test's Scenario 6 hand-builds a separation for,
// here discovered by FindTwoSeparation itself.
func buildTwoK4GluedOnColumn(t *testing.T) *spmatrix.Matrix {
	t.Helper()
	var perRow [][3]int64
	k4 := func(colOffset int64) {
		for i := int64(0); i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				perRow = append(perRow, [3]int64{i + colOffset, j + colOffset, 1})
			}
		}
	}
	k4(0)
	k4(3)
	return buildMatrix(t, 12, 7, spmatrix.Binary, perRow)
}

func TestFindTwoSeparationLocatesSharedColumn(t *testing.T) {
	m := buildTwoK4GluedOnColumn(t)
	sepa, ok := stage.FindTwoSeparation(m)
	require.True(t, ok)

	n := decomp.New(m, false)
	require.NoError(t, n.UpdateTwoSum(sepa))
	require.Equal(t, decomp.TypeTwoSum, n.Type)
	require.Len(t, n.Children, 2)
}
