package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/decomp"
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

func TestUpdateOneSumCoversEveryElement(t *testing.T) {
	m := identity3(t)
	n := decomp.New(m, true)
	n.UpdateOneSum([]decomp.ComponentSpec{
		{Rows: []int{0}, Columns: []int{0}},
		{Rows: []int{1}, Columns: []int{1}},
		{Rows: []int{2}, Columns: []int{2}},
	})
	require.Equal(t, decomp.TypeOneSum, n.Type)
	require.Len(t, n.Children, 3)
	for i := 0; i < 3; i++ {
		require.NotEqual(t, -1, n.ChildIndexForRow(i))
		require.NotEqual(t, -1, n.ChildIndexForColumn(i))
	}
}

func TestSetAttributesIrregularClampsSum(t *testing.T) {
	m := identity3(t)
	root := decomp.New(m, true)
	root.SetNumChildren(2)
	root.Children[0] = decomp.New(m, true)
	root.Children[0].Type = decomp.TypeGraph
	root.Children[0].Regularity = decomp.True
	root.Children[0].Graphicness = decomp.True

	root.Children[1] = decomp.New(m, true)
	root.Children[1].Type = decomp.TypeIrregular
	root.Children[1].Regularity = decomp.False
	root.Children[1].Graphicness = decomp.False
	root.Children[1].Cographicness = decomp.False

	root.Type = decomp.TypeOneSum
	root.SetAttributes()

	require.Equal(t, decomp.False, root.Regularity)
	require.Equal(t, decomp.False, root.Graphicness)
}

func TestCloneSubtreeSharesDeduped(t *testing.T) {
	m := identity3(t)
	shared := decomp.New(m, true)
	root := decomp.New(m, true)
	root.SetNumChildren(2)
	root.Children[0] = shared
	root.Children[1] = shared
	root.ChildLinks[0] = decomp.ChildLink{}
	root.ChildLinks[1] = decomp.ChildLink{}

	seen := map[*decomp.Node]*decomp.Node{}
	clone := decomp.CloneSubtree(root, seen)
	require.Same(t, clone.Children[0], clone.Children[1])
	require.NotSame(t, clone.Children[0], shared)
}
