package stage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/spmatrix"
	"github.com/discopt/seymour-go/stage"
)

// TestTestR10AcceptsFourThreesOneFiveSignature exercises case (a): four
// rows (and four columns) of degree 3, one row (and one column) of degree
// 5. Row/column 4 touch every column/row; rows 0-3 form a 4-cycle over
// columns 0-3, each picking up column 4 as their third nonzero.
func TestTestR10AcceptsFourThreesOneFiveSignature(t *testing.T) {
	m := buildMatrix(t, 5, 5, spmatrix.Ternary, [][3]int64{
		{0, 0, 1}, {0, 1, 1}, {0, 4, 1},
		{1, 1, 1}, {1, 2, 1}, {1, 4, 1},
		{2, 2, 1}, {2, 3, 1}, {2, 4, 1},
		{3, 3, 1}, {3, 0, 1}, {3, 4, 1},
		{4, 0, 1}, {4, 1, 1}, {4, 2, 1}, {4, 3, 1}, {4, 4, 1},
	})
	require.True(t, stage.TestR10(m))
}

// TestTestR10AcceptsCanonicalCirculantSignature exercises case (b): the
// canonical circulant 5x5 construction, every row and column of degree 3,
// any two rows sharing exactly one column.
func TestTestR10AcceptsCanonicalCirculantSignature(t *testing.T) {
	var cells [][3]int64
	for i := int64(0); i < 5; i++ {
		for _, off := range []int64{1, 2, 3} {
			cells = append(cells, [3]int64{i, (i + off) % 5, 1})
		}
	}
	m := buildMatrix(t, 5, 5, spmatrix.Ternary, cells)
	require.True(t, stage.TestR10(m))
}

func TestTestR10RejectsUnrelatedDegreeMix(t *testing.T) {
	m := buildMatrix(t, 5, 5, spmatrix.Ternary, [][3]int64{
		{0, 0, 1}, {1, 1, 1}, {2, 2, 1}, {3, 3, 1}, {4, 4, 1},
	})
	require.False(t, stage.TestR10(m))
}
