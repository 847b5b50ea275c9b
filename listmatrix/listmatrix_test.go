package listmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/listmatrix"
	"github.com/discopt/seymour-go/spmatrix"
)

func buildIdentity3(t *testing.T) *listmatrix.ListMatrix {
	t.Helper()
	b := spmatrix.NewBuilder(3, 3, spmatrix.Ternary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(1, 1, 1))
	require.NoError(t, b.Add(2, 2, 1))
	m, err := b.Build()
	require.NoError(t, err)
	lm, err := listmatrix.FromMatrix(m)
	require.NoError(t, err)
	return lm
}

func TestInsertUnlinkRoundTrip(t *testing.T) {
	lm := buildIdentity3(t)
	out, err := lm.ToMatrix(spmatrix.Ternary)
	require.NoError(t, err)

	b := spmatrix.NewBuilder(3, 3, spmatrix.Ternary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(1, 1, 1))
	require.NoError(t, b.Add(2, 2, 1))
	expect, err := b.Build()
	require.NoError(t, err)

	require.True(t, out.Equal(expect))
}

func TestUnlinkRemovesDegree(t *testing.T) {
	lm := buildIdentity3(t)
	require.Equal(t, 1, lm.RowDegree(0))
	idx := lm.Find(0, 0)
	require.NotEqual(t, -1, idx)
	lm.Unlink(idx)
	require.Equal(t, 0, lm.RowDegree(0))
	require.Equal(t, -1, lm.Find(0, 0))
}

func TestPivotGF2Involution(t *testing.T) {
	// [[1,1],[0,1]] pivoted twice at (0,0) under GF(2) returns to itself.
	b := spmatrix.NewBuilder(2, 2, spmatrix.Binary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(0, 1, 1))
	require.NoError(t, b.Add(1, 1, 1))
	m, err := b.Build()
	require.NoError(t, err)
	lm, err := listmatrix.FromMatrix(m)
	require.NoError(t, err)

	_, err = lm.Pivot(0, 0, listmatrix.GF2, nil)
	require.NoError(t, err)
	_, err = lm.Pivot(0, 0, listmatrix.GF2, nil)
	require.NoError(t, err)

	out, err := lm.ToMatrix(spmatrix.Binary)
	require.NoError(t, err)
	require.True(t, out.Equal(m))
}

func TestPivotRegularDetectsOverflow(t *testing.T) {
	b := spmatrix.NewBuilder(2, 2, spmatrix.Integer)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(0, 1, 3))
	require.NoError(t, b.Add(1, 0, 1))
	require.NoError(t, b.Add(1, 1, 1))
	m, err := b.Build()
	require.NoError(t, err)
	lm, err := listmatrix.FromMatrix(m)
	require.NoError(t, err)

	cert, err := lm.Pivot(0, 0, listmatrix.Regular, []element.Pivot{})
	require.NoError(t, err)
	require.NotNil(t, cert)
	require.Equal(t, 1, cert.BadRow)
	require.Equal(t, 1, cert.BadCol)
}

func TestExtendedGCD(t *testing.T) {
	g, x, y := listmatrix.ExtendedGCD(12, 8)
	require.Equal(t, int64(4), g)
	require.Equal(t, int64(4), 12*x+8*y)
}

func TestUpperDiagonalizeRankOfIdentity(t *testing.T) {
	lm := buildIdentity3(t)
	res, err := lm.UpperDiagonalize()
	require.NoError(t, err)
	require.Equal(t, 3, res.Rank)
	require.False(t, res.UsedBigInt)
}
