package graphoracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/graphoracle"
)

func TestGraphAddRemoveEdge(t *testing.T) {
	g := graphoracle.NewGraph()
	a, b := g.AddNode(), g.AddNode()
	idx := g.AddEdge(a, b, element.MakeRow(1), +1, false)

	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 1, g.NumEdges())
	require.Contains(t, g.NeighborsOf(a), idx)
	require.Contains(t, g.NeighborsOf(b), idx)

	g.RemoveEdge(idx)
	require.NotContains(t, g.NeighborsOf(a), idx)
	require.NotContains(t, g.NeighborsOf(b), idx)
}

func TestGraphMergeNodes(t *testing.T) {
	g := graphoracle.NewGraph()
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	idx := g.AddEdge(b, c, element.MakeRow(1), +1, false)

	g.MergeNodes(a, b)

	require.Empty(t, g.NeighborsOf(b))
	require.Contains(t, g.NeighborsOf(a), idx)
	e := g.Edges()[idx]
	require.Equal(t, a, e.From)
}
