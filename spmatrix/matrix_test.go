package spmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/spmatrix"
)

func identity3(t *testing.T) *spmatrix.Matrix {
	t.Helper()
	b := spmatrix.NewBuilder(3, 3, spmatrix.Ternary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(1, 1, 1))
	require.NoError(t, b.Add(2, 2, 1))
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestBuildFromRowsRejectsUnsorted(t *testing.T) {
	_, err := spmatrix.BuildFromRows(1, 2, spmatrix.Ternary, [][]spmatrix.Entry{
		{{Index: 1, Value: 1}, {Index: 0, Value: 1}},
	})
	require.ErrorIs(t, err, spmatrix.ErrUnsortedRow)
}

func TestBuildFromRowsRejectsBadValue(t *testing.T) {
	_, err := spmatrix.BuildFromRows(1, 1, spmatrix.Ternary, [][]spmatrix.Entry{
		{{Index: 0, Value: 2}},
	})
	require.ErrorIs(t, err, spmatrix.ErrBadValue)
}

func TestTransposeOfIdentityIsIdentity(t *testing.T) {
	m := identity3(t)
	tr := m.Transpose()
	require.True(t, m.Equal(tr))
}

func TestSubmatrixSliceTransposeCommute(t *testing.T) {
	b := spmatrix.NewBuilder(2, 3, spmatrix.Ternary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(0, 2, -1))
	require.NoError(t, b.Add(1, 1, 1))
	m, err := b.Build()
	require.NoError(t, err)

	rows, cols := []int{1, 0}, []int{2, 0}
	left, err := m.Submatrix(rows, cols)
	require.NoError(t, err)
	leftT := left.Transpose()

	right, err := m.Transpose().Submatrix(cols, rows)
	require.NoError(t, err)

	require.True(t, leftT.Equal(right))
}

func TestEqualDetectsShapeMismatch(t *testing.T) {
	a := identity3(t)
	b, err := spmatrix.NewMatrix(2, 2, spmatrix.Ternary)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestIsSorted(t *testing.T) {
	m := identity3(t)
	require.True(t, m.IsSorted())
}
